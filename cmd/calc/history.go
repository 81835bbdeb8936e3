package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aw-devel/Tacton-Code-Test-A/internal/history"
)

var (
	historyDB    string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recently recorded evaluations",
	Long: `History prints the most recent evaluations recorded in the SQLite
database named by --db, newest first.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyDB == "" {
			historyDB = historyPath
		}
		if historyDB == "" {
			return fmt.Errorf("--db is required")
		}
		store, err := history.Open(historyDB)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()

		entries, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %s = %s\n", e.CreatedAt.Format(time.RFC3339), e.Expression, formatResult(e.Result))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyDB, "db", "", "SQLite history database to read")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to print")
	rootCmd.AddCommand(historyCmd)
}
