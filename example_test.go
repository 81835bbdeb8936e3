package calc_test

import (
	"fmt"
	"strings"

	calc "github.com/aw-devel/Tacton-Code-Test-A"
)

func ExampleEvaluate() {
	fmt.Println(calc.Evaluate("1 + 2 * 3"))
	fmt.Println(calc.Evaluate("20 / 4 / 2"))
	fmt.Println(calc.Evaluate("3 * -2 + 6"))
	fmt.Println(calc.Evaluate("7 / 2"))

	// Output:
	// 7 <nil>
	// 2.5 <nil>
	// 0 <nil>
	// 3.5 <nil>
}

func ExampleEvaluate_errors() {
	_, err := calc.Evaluate("5 / 0")
	fmt.Println(err)
	_, err = calc.Evaluate("5.5 + 3")
	fmt.Println(err)
	_, err = calc.Evaluate("5 +")
	fmt.Println(err)

	// Output:
	// division by zero
	// invalid number "5.5"
	// malformed expression: 2 tokens, expected number operator number ...
}

func ExamplePostfix() {
	rpn, _ := calc.Postfix("1 + 2 * 3")
	fmt.Println(strings.Join(rpn, " "))

	// Output:
	// 1 2 3 * +
}
