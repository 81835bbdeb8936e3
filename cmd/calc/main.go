// Command calc evaluates space-separated infix arithmetic expressions.
//
// With arguments, it joins them into one expression and prints the result:
//
//	calc 1 + 2 \* 3
//
// Without arguments it reads one expression per line from stdin. The check
// subcommand runs a YAML suite of expected evaluations, and the history
// subcommand prints previously recorded results.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	calc "github.com/aw-devel/Tacton-Code-Test-A"
	"github.com/aw-devel/Tacton-Code-Test-A/internal/history"
)

var (
	postfixFlag bool
	historyPath string
)

var rootCmd = &cobra.Command{
	Use:   "calc [expression]",
	Short: "Evaluate space-separated infix arithmetic expressions",
	Long: `Calc evaluates arithmetic expressions of integers and the operators
+, -, * and /, written as space-separated tokens: "1 + 2 * 3".

Arguments are joined with spaces and evaluated as one expression. With no
arguments, calc reads one expression per line from stdin until EOF or a line
reading "quit". Division is exact, so 7 / 2 is 3.5.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		if store != nil {
			defer store.Close()
		}
		if len(args) == 0 {
			return repl(cmd.InOrStdin(), cmd.OutOrStdout(), store)
		}
		return evalOnce(strings.Join(args, " "), store)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&postfixFlag, "postfix", false, "Print the postfix token order instead of evaluating")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history", "", "Record successful evaluations in this SQLite database")
}

func openHistory() (*history.Store, error) {
	if historyPath == "" {
		return nil, nil
	}
	store, err := history.Open(historyPath)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return store, nil
}

func evalOnce(expr string, store *history.Store) error {
	if postfixFlag {
		tokens, err := calc.Postfix(expr)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(tokens, " "))
		return nil
	}
	r, err := calc.Evaluate(expr)
	if err != nil {
		return err
	}
	fmt.Println(formatResult(r))
	if store != nil {
		if _, err := store.Record(expr, r); err != nil {
			return err
		}
	}
	return nil
}

// formatResult prints integral results without a decimal part and fractional
// results compactly: 7, not 7.000000, and 3.5 as written.
func formatResult(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
