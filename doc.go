// Package calc evaluates arithmetic expressions written as space-separated
// infix tokens of integers and the operators +, -, * and /.
//
// An expression alternates number and operator tokens, like "1 + 2 * 3".
// Numbers are signed base-10 integers; the sign belongs to the number token
// itself, so "-5 + 3" is valid but "- 5 + 3" is not. Multiplication and
// division bind tighter than addition and subtraction, and operators of
// equal precedence group left to right: "1 + 2 * 3" is 7 and "20 / 4 / 2"
// is 2.5.
//
// Evaluation converts the infix tokens to postfix order with the shunting
// yard algorithm and reduces the postfix sequence with a value stack.
// Arithmetic is performed in float64. Integers of magnitude up to 2^53 are
// exact; larger values round to the nearest representable double, and
// literals beyond the int64 range widen into the floating-point domain
// instead of failing.
//
// All functions are pure and keep no state between calls, so the package is
// safe for concurrent use.
package calc
