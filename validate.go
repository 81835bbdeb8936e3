package calc

import (
	"errors"
	"strconv"
	"strings"
)

// validate checks that tokens form a well-formed alternating infix sequence.
// The sequence must be non-empty and of odd length, every even-indexed token
// must parse as a signed base-10 integer, and every odd-indexed token must be
// one of the four operators. The scan is left to right and reports the first
// violation. It is a pure check; the tokens are not transformed.
func validate(tokens []string) error {
	if len(tokens) == 0 {
		return &EmptyExpressionError{}
	}
	if len(tokens)%2 == 0 {
		return &MalformedExpressionError{Tokens: len(tokens)}
	}
	for i, tok := range tokens {
		if i%2 == 1 {
			if len(tok) != 1 || !strings.Contains(Operators, tok) {
				return &OperatorError{Operator: tok}
			}
			continue
		}
		if _, err := strconv.ParseInt(tok, 10, 64); err != nil {
			// A syntactically valid integer beyond the int64 range is still a
			// number token. It widens to float64 during evaluation.
			if !errors.Is(err, strconv.ErrRange) {
				return &NumberError{Number: tok}
			}
		}
	}
	return nil
}
