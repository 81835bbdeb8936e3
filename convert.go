package calc

// opKind identifies the evaluation behavior of an operator token.
type opKind int8

const (
	opNone opKind = iota

	opAdd // pop two, push l + r
	opSub // pop two, push l - r
	opMul // pop two, push l * r
	opDiv // pop two, push l / r; r must be nonzero
)

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// op is the behavior to use when this operator is selected.
	op opKind
}

// moreBinding reports whether an operator at the top of the stack binds at
// least as tightly as an incoming operator. All four operators associate
// left, so equal precedence still pops.
func (p operator) moreBinding(than operator) bool {
	return p.prec >= than.prec
}

// binop gets the binary operator for a token string. If there is no such
// binary operator, then the result has an op of opNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, opAdd}
	case "-":
		return operator{1, opSub}
	case "*":
		return operator{2, opMul}
	case "/":
		return operator{2, opDiv}
	default:
		return operator{}
	}
}

// toPostfix converts a validated infix token sequence to postfix order using
// the shunting yard algorithm. Number tokens keep their relative order;
// operator tokens are reordered so that the result evaluates left to right
// with a single value stack and no precedence rules. For an alternating
// sequence of length 2n+1 the result is again exactly 2n+1 tokens.
func toPostfix(tokens []string) []string {
	output := make([]string, 0, len(tokens))
	var ops []string
	for _, tok := range tokens {
		prec := binop(tok)
		if prec.op == opNone {
			output = append(output, tok)
			continue
		}
		for len(ops) > 0 && binop(ops[len(ops)-1]).moreBinding(prec) {
			output = append(output, ops[len(ops)-1])
			ops = ops[:len(ops)-1]
		}
		ops = append(ops, tok)
	}
	for len(ops) > 0 {
		output = append(output, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	return output
}
