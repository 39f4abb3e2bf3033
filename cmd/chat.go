package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/domain"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/formatter"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/logging"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/storage"
)

var (
	chatShowSQL  bool
	chatShowRows bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive session",
	Long: `Start an interactive chat session. Follow-up questions like
"what about yesterday?" are resolved against the previous question.

Type "exit" or "quit" to leave.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatShowSQL, "sql", false, "Print the executed SQL after each answer")
	chatCmd.Flags().BoolVar(&chatShowRows, "rows", false, "Print the underlying result rows after each answer")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	a, store, err := newAssistant(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Println("Constituency assistant ready. Ask about visitors, assemblies, or beneficiary schemes.")
	fmt.Println("For example:")

	for _, desc := range domain.All() {
		if len(desc.Examples) > 0 {
			fmt.Printf("  - %s\n", desc.Examples[0])
		}
	}

	fmt.Println(`Type "exit" to leave.`)
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("you> ")

		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}

		if question == "exit" || question == "quit" {
			break
		}

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Analyzing your question..."
		s.Start()

		resp, err := a.Ask(cmd.Context(), question)

		s.Stop()

		if err != nil {
			logging.WithError(err).Error("turn failed")
			fmt.Printf("Error: %v\n\n", err)

			continue
		}

		fmt.Printf("assistant> %s\n", resp.Answer)

		if chatShowSQL && resp.SQL != "" {
			fmt.Printf("sql> %s\n", resp.SQL)
		}

		if chatShowRows && len(resp.Columns) > 0 {
			rs := &storage.ResultSet{Columns: resp.Columns, Rows: resp.Rows}
			fmt.Print(formatter.NewFormatter().FormatResultSet(rs))
		}

		fmt.Println()
	}

	return scanner.Err()
}
