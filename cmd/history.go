package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversation turns",
	RunE:  runHistory,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved conversation history",
	RunE:  runClear,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of turns to show")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(clearCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	turns, err := store.RecentMessages(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(turns) == 0 {
		fmt.Println("No conversation history.")
		return nil
	}

	for _, t := range turns {
		fmt.Printf("[%s] %s: %s\n", t.CreatedAt, t.Role, t.Message)
	}

	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.HistoryCount(cmd.Context())
	if err != nil {
		return err
	}

	if err := store.ClearHistory(cmd.Context()); err != nil {
		return err
	}

	fmt.Printf("Cleared %d saved messages.\n", count)

	return nil
}
