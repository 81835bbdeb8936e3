package calc

import "strconv"

// EmptyExpressionError is an error indicating an empty or whitespace-only
// expression. It implements InputError.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "empty expression"
}

func (err *EmptyExpressionError) Token() string {
	return ""
}

// MalformedExpressionError is an error indicating a token sequence that does
// not alternate number, operator, number. It implements InputError.
type MalformedExpressionError struct {
	// Tokens is the number of tokens in the expression.
	Tokens int
}

func (err *MalformedExpressionError) Error() string {
	return "malformed expression: " + strconv.Itoa(err.Tokens) + " tokens, expected number operator number ..."
}

func (err *MalformedExpressionError) Token() string {
	return ""
}

// NumberError is an error indicating a token in a number position that does
// not parse as a signed base-10 integer. It implements InputError.
type NumberError struct {
	// Number is the token that did not parse.
	Number string
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Number)
}

func (err *NumberError) Token() string {
	return err.Number
}

// OperatorError is an error indicating a token in an operator position that
// is not one of the four supported operators. It implements InputError.
type OperatorError struct {
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return "invalid operator " + strconv.Quote(err.Operator)
}

func (err *OperatorError) Token() string {
	return err.Operator
}

// InputError is an error found by checking an expression before it is
// evaluated. Every error resulting from invalid input implements InputError.
type InputError interface {
	error
	// Token returns the token that caused the error, or the empty string when
	// the error concerns the expression as a whole.
	Token() string
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperatorError)(nil)
)

// OperandError is an error indicating an operator with fewer than two stacked
// values during postfix evaluation.
type OperandError struct {
	// Operator is the operator that was missing operands.
	Operator string
}

func (err *OperandError) Error() string {
	return "not enough operands for " + strconv.Quote(err.Operator)
}

// DivisionByZeroError is an error indicating a division whose right operand
// is zero.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}

// RPNError is an error indicating a postfix sequence that did not reduce to
// exactly one value.
type RPNError struct {
	// Values is the number of values left on the stack.
	Values int
}

func (err *RPNError) Error() string {
	return "malformed postfix expression: " + strconv.Itoa(err.Values) + " values remain"
}
