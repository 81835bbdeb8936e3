package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	calc "github.com/aw-devel/Tacton-Code-Test-A"
	"github.com/aw-devel/Tacton-Code-Test-A/internal/history"
)

// repl reads one expression per line until EOF or "quit", printing results to
// out and errors to stderr. Errors never end the session. With --postfix,
// each line is converted to its postfix order instead of evaluated.
func repl(in io.Reader, out io.Writer, store *history.Store) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "quit" {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if postfixFlag {
			tokens, err := calc.Postfix(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
				continue
			}
			fmt.Fprintln(out, strings.Join(tokens, " "))
			continue
		}
		r, err := calc.Evaluate(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
			continue
		}
		fmt.Fprintln(out, formatResult(r))
		if store != nil {
			if _, err := store.Record(line, r); err != nil {
				fmt.Fprintln(os.Stderr, color.RedString("recording history: %v", err))
			}
		}
	}
	return scanner.Err()
}
