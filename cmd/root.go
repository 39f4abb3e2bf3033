// Package cmd implements the seva-sadhana command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/assistant"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/config"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/llm"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/logging"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/storage"
)

var (
	flagDBPath        string
	flagLogLevel      string
	flagModel         string
	flagHistoryWindow int

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "seva-sadhana",
	Short: "Ask questions about constituency data in plain language",
	Long: `seva-sadhana is a conversational assistant over the constituency database.
It answers questions about visitors, the assembly hierarchy, and beneficiary
schemes by planning a query, generating SQL, validating it, and summarizing
the results.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db-path", "", "Path to the constituency database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Model deployment name")
	rootCmd.PersistentFlags().IntVar(&flagHistoryWindow, "history-window", 0, "Number of past messages carried as context")
}

func setupApp(_ *cobra.Command, _ []string) error {
	overrides := map[string]interface{}{
		"db-path":        flagDBPath,
		"log-level":      flagLogLevel,
		"model":          flagModel,
		"history-window": flagHistoryWindow,
	}

	cfg, err := config.LoadConfigWithOverrides(overrides)
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeConfig, "failed to load configuration")
	}

	cfg.ExpandAllPaths()

	if err := cfg.EnsureDirectories(); err != nil {
		return errors.Wrap(err, errors.ErrTypeConfig, "failed to prepare directories")
	}

	if err := logging.InitializeLogger(cfg.Logging); err != nil {
		logging.SetupFallbackLogger()
		logging.WithError(err).Warn("falling back to default logger")
	}

	appConfig = cfg

	return nil
}

// openStore opens the database and applies pending migrations
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	store, err := storage.NewStore(appConfig.Database.Path, storage.Options{
		QueryTimeout: appConfig.QueryTimeoutDuration(),
		MaxRows:      appConfig.Database.MaxRows,
	})
	if err != nil {
		return nil, err
	}

	if err := store.Initialize(cmd.Context()); err != nil {
		_ = store.Close()
		return nil, err
	}

	return store, nil
}

// newAssistant wires the model client, store, and assistant together
func newAssistant(cmd *cobra.Command) (*assistant.Assistant, *storage.Store, error) {
	store, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	client, err := llm.NewClient(llm.Config{
		APIKey:      appConfig.LLM.APIKey,
		Endpoint:    appConfig.LLM.Endpoint,
		Model:       appConfig.LLM.Model,
		Temperature: appConfig.LLM.Temperature,
		Timeout:     appConfig.LLMTimeoutDuration(),
		MaxRetries:  appConfig.LLM.MaxRetries,
	})
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return assistant.New(client, store, appConfig.History.Window), store, nil
}
