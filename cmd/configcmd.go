package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the active configuration",
	Long:  `Show the current configuration merged from file, environment variables, and flags. The API key is never printed.`,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appConfig
	if cfg == nil {
		return errors.NewConfigError("failed to load configuration", "")
	}

	fmt.Println("Active Configuration")
	fmt.Println("====================")

	fmt.Println("\nDatabase:")
	fmt.Printf("  Path: %s\n", cfg.Database.Path)
	fmt.Printf("  Query Timeout: %s\n", cfg.Database.QueryTimeout)
	fmt.Printf("  Max Rows: %d\n", cfg.Database.MaxRows)

	fmt.Println("\nModel:")
	fmt.Printf("  Endpoint: %s\n", cfg.LLM.Endpoint)
	fmt.Printf("  Model: %s\n", cfg.LLM.Model)
	fmt.Printf("  Temperature: %g\n", cfg.LLM.Temperature)
	fmt.Printf("  Timeout: %s\n", cfg.LLM.Timeout)
	fmt.Printf("  Max Retries: %d\n", cfg.LLM.MaxRetries)
	fmt.Printf("  API Key Set: %t\n", cfg.LLM.APIKey != "")

	fmt.Println("\nHistory:")
	fmt.Printf("  Window: %d messages\n", cfg.History.Window)

	fmt.Println("\nLogging:")
	fmt.Printf("  Level: %s\n", cfg.Logging.Level)
	fmt.Printf("  Format: %s\n", cfg.Logging.Format)
	fmt.Printf("  Output: %s\n", cfg.Logging.Output)

	if cfg.Logging.Output == "file" {
		fmt.Printf("  File: %s\n", cfg.Logging.File)
	}

	return nil
}
