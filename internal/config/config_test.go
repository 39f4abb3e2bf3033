package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:         "/tmp/constituency.db",
			QueryTimeout: "30s",
			MaxRows:      10000,
		},
		LLM: LLMConfig{
			APIKey:      "test-key",
			Endpoint:    "https://example.openai.azure.com",
			Model:       "gpt-4o-mini",
			Temperature: 0,
			Timeout:     "60s",
			MaxRetries:  2,
		},
		History: HistoryConfig{Window: 8},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	tempConfigPath := filepath.Join(t.TempDir(), "missing.json")
	t.Setenv("SEVA_SADHANA_CONFIG", tempConfigPath)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "30s", cfg.Database.QueryTimeout)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 8, cfg.History.Window)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	tempConfigPath := filepath.Join(t.TempDir(), "missing.json")
	t.Setenv("SEVA_SADHANA_CONFIG", tempConfigPath)
	t.Setenv("CONSTITUENCY_DB_PATH", "/env/db/constituency.db")
	t.Setenv("AZURE_OPENAI_API_KEY", "env-key")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://env.openai.azure.com")
	t.Setenv("AZURE_OPENAI_MODEL", "gpt-4o")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("HISTORY_WINDOW", "12")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/env/db/constituency.db", cfg.Database.Path)
	assert.Equal(t, "env-key", cfg.LLM.APIKey)
	assert.Equal(t, "https://env.openai.azure.com", cfg.LLM.Endpoint)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 12, cfg.History.Window)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.json")

	testConfig := map[string]interface{}{
		"database": map[string]interface{}{
			"path":          "/custom/path/db.db",
			"query_timeout": "60s",
		},
		"llm": map[string]interface{}{
			"endpoint": "https://file.openai.azure.com",
			"model":    "gpt-4o",
		},
		"logging": map[string]interface{}{
			"level":  "debug",
			"format": "json",
		},
	}

	data, err := json.MarshalIndent(testConfig, "", "  ")
	require.NoError(t, err)

	err = os.WriteFile(configPath, data, 0600)
	require.NoError(t, err)

	config := validTestConfig()
	err = loadConfigFromFile(config, configPath)
	require.NoError(t, err)

	assert.Equal(t, "/custom/path/db.db", config.Database.Path)
	assert.Equal(t, "60s", config.Database.QueryTimeout)
	assert.Equal(t, "https://file.openai.azure.com", config.LLM.Endpoint)
	assert.Equal(t, "gpt-4o", config.LLM.Model)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

func TestLoadConfigFromFileInvalidJSON(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.json")

	err := os.WriteFile(configPath, []byte("invalid json"), 0600)
	require.NoError(t, err)

	config := validTestConfig()
	err = loadConfigFromFile(config, configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestApplyFlagOverrides(t *testing.T) {
	config := validTestConfig()

	overrides := map[string]interface{}{
		"db-path":        "/flag/db/path.db",
		"log-level":      "error",
		"model":          "gpt-4o",
		"history-window": 4,
	}

	applyFlagOverrides(config, overrides)

	assert.Equal(t, "/flag/db/path.db", config.Database.Path)
	assert.Equal(t, "error", config.Logging.Level)
	assert.Equal(t, "gpt-4o", config.LLM.Model)
	assert.Equal(t, 4, config.History.Window)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name          string
		modifyConfig  func(*Config)
		expectError   bool
		errorContains string
	}{
		{
			name:         "valid config",
			modifyConfig: func(_ *Config) {},
			expectError:  false,
		},
		{
			name: "invalid log level",
			modifyConfig: func(c *Config) {
				c.Logging.Level = "invalid"
			},
			expectError:   true,
			errorContains: "invalid log level",
		},
		{
			name: "invalid log format",
			modifyConfig: func(c *Config) {
				c.Logging.Format = "invalid"
			},
			expectError:   true,
			errorContains: "invalid log format",
		},
		{
			name: "invalid log output",
			modifyConfig: func(c *Config) {
				c.Logging.Output = "invalid"
			},
			expectError:   true,
			errorContains: "invalid log output",
		},
		{
			name: "invalid database timeout",
			modifyConfig: func(c *Config) {
				c.Database.QueryTimeout = "invalid"
			},
			expectError:   true,
			errorContains: "invalid database query timeout",
		},
		{
			name: "invalid llm timeout",
			modifyConfig: func(c *Config) {
				c.LLM.Timeout = "invalid"
			},
			expectError:   true,
			errorContains: "invalid llm timeout",
		},
		{
			name: "temperature out of range",
			modifyConfig: func(c *Config) {
				c.LLM.Temperature = 3.5
			},
			expectError:   true,
			errorContains: "temperature out of range",
		},
		{
			name: "non-positive history window",
			modifyConfig: func(c *Config) {
				c.History.Window = 0
			},
			expectError:   true,
			errorContains: "history window must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validTestConfig()
			tt.modifyConfig(config)

			err := validateConfig(config)
			if tt.expectError {
				assert.Error(t, err)

				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "absolute path",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path",
			input:    "relative/path",
			expected: "relative/path",
		},
		{
			name:     "home directory only",
			input:    "~",
			expected: os.Getenv("HOME"),
		},
		{
			name:     "home directory with path",
			input:    "~/config/file.json",
			expected: filepath.Join(os.Getenv("HOME"), "config/file.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expected == "" {
				t.Skip("HOME environment variable not set")
			}

			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestConfigExpandAllPaths(t *testing.T) {
	config := &Config{
		Database: DatabaseConfig{
			Path: "~/db/constituency.db",
		},
		Logging: LoggingConfig{
			File: "~/logs/app.log",
		},
	}

	config.ExpandAllPaths()

	homeDir := os.Getenv("HOME")
	if homeDir == "" {
		t.Skip("HOME environment variable not set")
	}

	assert.Equal(t, filepath.Join(homeDir, "db/constituency.db"), config.Database.Path)
	assert.Equal(t, filepath.Join(homeDir, "logs/app.log"), config.Logging.File)
}

func TestSaveConfig(t *testing.T) {
	tempConfigPath := filepath.Join(t.TempDir(), "test_config.json")
	t.Setenv("SEVA_SADHANA_CONFIG", tempConfigPath)

	config := validTestConfig()
	config.Database.Path = "/custom/path"
	config.Logging.Level = "debug"

	err := SaveConfig(config)
	require.NoError(t, err)

	data, err := os.ReadFile(tempConfigPath)
	require.NoError(t, err)

	var loadedConfig Config
	err = json.Unmarshal(data, &loadedConfig)
	require.NoError(t, err)

	assert.Equal(t, config.Database.Path, loadedConfig.Database.Path)
	assert.Equal(t, config.Logging.Level, loadedConfig.Logging.Level)
}

func TestMergeConfigs(t *testing.T) {
	target := validTestConfig()
	source := &Config{
		Database: DatabaseConfig{
			Path: "/new/path",
		},
		Logging: LoggingConfig{
			Level: "debug",
		},
	}

	mergeConfigs(target, source)

	assert.Equal(t, "/new/path", target.Database.Path)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "30s", target.Database.QueryTimeout)
	assert.Equal(t, "text", target.Logging.Format)
}

func TestTimeoutDurations(t *testing.T) {
	config := validTestConfig()

	assert.Equal(t, "30s", config.Database.QueryTimeout)
	assert.Equal(t, float64(30), config.QueryTimeoutDuration().Seconds())
	assert.Equal(t, float64(60), config.LLMTimeoutDuration().Seconds())

	config.Database.QueryTimeout = "garbage"
	assert.Equal(t, float64(30), config.QueryTimeoutDuration().Seconds())
}
