package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/assistant"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/formatter"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/storage"
)

var (
	askShowSQL  bool
	askShowRows bool
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and print the answer",
	Long: `Ask one question about constituency data and exit.

Examples:
  seva-sadhana ask "how many visitors came this month?"
  seva-sadhana ask --sql "top 5 booths by visitor count"
  seva-sadhana ask "who is the incharge of 163-Limbayat?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowSQL, "sql", false, "Print the executed SQL after the answer")
	askCmd.Flags().BoolVar(&askShowRows, "rows", false, "Print the underlying result rows as a table")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))

	a, store, err := newAssistant(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Analyzing your question..."
	s.Start()

	resp, err := a.Ask(cmd.Context(), question)

	s.Stop()

	if err != nil {
		return err
	}

	printResponse(resp)

	return nil
}

func printResponse(resp *assistant.Response) {
	fmt.Println(resp.Answer)

	if askShowSQL && resp.SQL != "" {
		fmt.Printf("\nSQL: %s\n", resp.SQL)
	}

	if askShowRows && len(resp.Columns) > 0 {
		rs := &storage.ResultSet{Columns: resp.Columns, Rows: resp.Rows}
		fmt.Printf("\n%s", formatter.NewFormatter().FormatResultSet(rs))
	}
}
