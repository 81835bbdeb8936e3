package calc

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := [][]string{
		{"42"},
		{"-42"},
		{"+7"},
		{"1", "+", "2"},
		{"1", "+", "2", "-", "3", "*", "4", "/", "5"},
		{"-5", "+", "-3"},
		// out of int64 range, still a number token
		{"99999999999999999999999999", "+", "1"},
		{"-99999999999999999999999999", "*", "2"},
	}
	for _, tokens := range cases {
		if err := validate(tokens); err != nil {
			t.Errorf("validating %q: unexpected error %v", tokens, err)
		}
	}
}

func TestValidateEmpty(t *testing.T) {
	for _, tokens := range [][]string{nil, {}} {
		err := validate(tokens)
		var e *EmptyExpressionError
		if !errors.As(err, &e) {
			t.Errorf("validating %q: want EmptyExpressionError, got %#v", tokens, err)
		}
	}
}

func TestValidateMalformed(t *testing.T) {
	cases := [][]string{
		{"5", "3"},
		{"5", "+"},
		{"+", "5"},
		{"-", "5"},
		{"1", "+", "2", "*"},
	}
	for _, tokens := range cases {
		err := validate(tokens)
		var e *MalformedExpressionError
		if !errors.As(err, &e) {
			t.Fatalf("validating %q: want MalformedExpressionError, got %#v", tokens, err)
		}
		if e.Tokens != len(tokens) {
			t.Errorf("validating %q: error reports %d tokens, want %d", tokens, e.Tokens, len(tokens))
		}
	}
}

func TestValidateNumbers(t *testing.T) {
	cases := []struct {
		tokens []string
		bad    string
	}{
		{[]string{"5.5", "+", "3"}, "5.5"},
		{[]string{"1", "+", "2e3"}, "2e3"},
		{[]string{"+"}, "+"},
		{[]string{"1", "+", "x"}, "x"},
		{[]string{"1,000", "+", "1"}, "1,000"},
		{[]string{"--5"}, "--5"},
		// first violation wins
		{[]string{"5.5", "@", "3"}, "5.5"},
	}
	for _, c := range cases {
		err := validate(c.tokens)
		var e *NumberError
		if !errors.As(err, &e) {
			t.Fatalf("validating %q: want NumberError, got %#v", c.tokens, err)
		}
		if e.Number != c.bad {
			t.Errorf("validating %q: error names %q, want %q", c.tokens, e.Number, c.bad)
		}
		if e.Token() != c.bad {
			t.Errorf("validating %q: Token gave %q, want %q", c.tokens, e.Token(), c.bad)
		}
	}
}

func TestValidateOperators(t *testing.T) {
	cases := []struct {
		tokens []string
		bad    string
	}{
		{[]string{"5", "@", "3"}, "@"},
		{[]string{"1", "%", "2"}, "%"},
		{[]string{"1", "3", "5"}, "3"},
		{[]string{"1", "**", "2"}, "**"},
		{[]string{"1", "×", "2"}, "×"},
		{[]string{"1", "(", "2"}, "("},
	}
	for _, c := range cases {
		err := validate(c.tokens)
		var e *OperatorError
		if !errors.As(err, &e) {
			t.Fatalf("validating %q: want OperatorError, got %#v", c.tokens, err)
		}
		if e.Operator != c.bad {
			t.Errorf("validating %q: error names %q, want %q", c.tokens, e.Operator, c.bad)
		}
	}
}
