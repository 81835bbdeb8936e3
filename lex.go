package calc

import "strings"

// Operators contains the tokens which are accepted as binary operators.
const Operators = "+-*/"

// tokenize splits an expression into its whitespace-separated tokens,
// discarding empty fragments. The result is empty for an empty or
// whitespace-only expression.
func tokenize(expr string) []string {
	return strings.Fields(expr)
}
