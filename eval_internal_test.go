package calc

import (
	"errors"
	"strings"
	"testing"
)

func TestEvalPostfixInsufficientOperands(t *testing.T) {
	cases := []struct {
		tokens []string
		op     string
	}{
		{[]string{"+"}, "+"},
		{[]string{"1", "+"}, "+"},
		{[]string{"1", "2", "+", "/"}, "/"},
	}
	for _, c := range cases {
		_, err := evalPostfix(c.tokens)
		var e *OperandError
		if !errors.As(err, &e) {
			t.Fatalf("evaluating %q: want OperandError, got %#v", c.tokens, err)
		}
		if e.Operator != c.op {
			t.Errorf("evaluating %q: error names %q, want %q", c.tokens, e.Operator, c.op)
		}
		if !strings.Contains(err.Error(), "not enough operands") {
			t.Errorf("evaluating %q: %q does not mention the missing operands", c.tokens, err.Error())
		}
	}
}

func TestEvalPostfixLeftoverValues(t *testing.T) {
	cases := []struct {
		tokens []string
		values int
	}{
		{[]string{}, 0},
		{[]string{"1", "2"}, 2},
		{[]string{"1", "2", "3", "+"}, 2},
	}
	for _, c := range cases {
		_, err := evalPostfix(c.tokens)
		var e *RPNError
		if !errors.As(err, &e) {
			t.Fatalf("evaluating %q: want RPNError, got %#v", c.tokens, err)
		}
		if e.Values != c.values {
			t.Errorf("evaluating %q: error reports %d values, want %d", c.tokens, e.Values, c.values)
		}
		if !strings.Contains(err.Error(), "values remain") {
			t.Errorf("evaluating %q: %q does not mention the leftover values", c.tokens, err.Error())
		}
	}
}
