package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/aw-devel/Tacton-Code-Test-A/internal/suite"
)

var watchFlag bool

var checkCmd = &cobra.Command{
	Use:   "check <suite.yaml>",
	Short: "Run a YAML suite of expected evaluations",
	Long: `Check runs every case in a YAML suite file and reports pass or fail.
Each case gives an expression and either the exact expected result or a
substring of the expected error message:

  cases:
    - expr: 1 + 2 * 3
      want: 7
    - expr: 5 / 0
      error: division by zero

With --watch, the suite is re-run whenever the file changes.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchFlag {
			return watchSuite(args[0])
		}
		failed, err := runSuite(args[0])
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d failed case(s)", failed)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&watchFlag, "watch", false, "Re-run the suite whenever the file changes")
	rootCmd.AddCommand(checkCmd)
}

// runSuite runs the suite once and prints its report, returning the number
// of failed cases.
func runSuite(path string) (int, error) {
	s, err := suite.Load(path)
	if err != nil {
		return 0, err
	}
	results := s.Run()
	for _, r := range results {
		if r.Passed {
			fmt.Printf("%s %s\n", color.GreenString("PASS"), r.Case.Expr)
		} else {
			fmt.Printf("%s %s: %s\n", color.RedString("FAIL"), r.Case.Expr, r.Got)
		}
	}
	failed := suite.Failed(results)
	fmt.Println(color.CyanString("%d passed, %d failed", len(results)-failed, failed))
	return failed, nil
}

// watchSuite re-runs the suite on every change to the file. Watching the
// directory rather than the file keeps the watch alive across editors that
// replace the file on save.
func watchSuite(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	report := func() {
		if _, err := runSuite(abs); err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		}
	}
	report()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fmt.Println()
				report()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, color.RedString("watch error: %v", err))
		}
	}
}
