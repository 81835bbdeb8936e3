package calc

import (
	"errors"
	"strconv"
)

// valueStack is the evaluator's working stack. The zero value is an empty
// stack ready to use.
type valueStack []float64

// push adds a value to the top of the stack.
func (s *valueStack) push(v float64) {
	*s = append(*s, v)
}

// pop removes the top from the stack and returns it.
func (s *valueStack) pop() float64 {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (s valueStack) top() float64 {
	return s[len(s)-1]
}

// number parses a number token. Tokens validate as signed integers; a value
// beyond the int64 range parses in the floating-point domain instead, so
// oversized inputs stay evaluable at reduced precision.
func number(tok string) (float64, error) {
	i, err := strconv.ParseInt(tok, 10, 64)
	if err == nil {
		return float64(i), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		f, _ := strconv.ParseFloat(tok, 64)
		return f, nil
	}
	return 0, &NumberError{Number: tok}
}

// evalPostfix reduces a postfix token sequence to a single value. Number
// tokens push onto the value stack; operator tokens pop the right operand,
// then the left, and push the operation's result. The sequence is malformed
// unless exactly one value remains after the scan.
func evalPostfix(tokens []string) (float64, error) {
	var stack valueStack
	for _, tok := range tokens {
		prec := binop(tok)
		if prec.op == opNone {
			v, err := number(tok)
			if err != nil {
				return 0, err
			}
			stack.push(v)
			continue
		}
		if len(stack) < 2 {
			return 0, &OperandError{Operator: tok}
		}
		r := stack.pop()
		l := stack.pop()
		switch prec.op {
		case opAdd:
			stack.push(l + r)
		case opSub:
			stack.push(l - r)
		case opMul:
			stack.push(l * r)
		case opDiv:
			if r == 0 {
				return 0, &DivisionByZeroError{}
			}
			stack.push(l / r)
		}
	}
	if len(stack) != 1 {
		return 0, &RPNError{Values: len(stack)}
	}
	return stack.top(), nil
}

// Evaluate computes the value of a space-separated infix expression of
// signed integers and the operators +, -, * and /, such as "1 + 2 * 3".
// Division is exact rather than truncating, so "7 / 2" is 3.5. A single
// number token is a valid expression. Errors from invalid input implement
// InputError; evaluation can additionally fail with a DivisionByZeroError.
func Evaluate(expr string) (float64, error) {
	tokens := tokenize(expr)
	if err := validate(tokens); err != nil {
		return 0, err
	}
	return evalPostfix(toPostfix(tokens))
}

// Postfix converts a space-separated infix expression to its postfix token
// sequence without evaluating it.
func Postfix(expr string) ([]string, error) {
	tokens := tokenize(expr)
	if err := validate(tokens); err != nil {
		return nil, err
	}
	return toPostfix(tokens), nil
}
