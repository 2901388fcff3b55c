package interp

import (
	"math"
	"strconv"
)

// Evaluate runs the whole pipeline on one input string: tokenize, parse,
// evaluate. Trailing text after the expression is rejected.
func Evaluate(input string) (float64, error) {
	p, err := NewParser(NewLexer(input))
	if err != nil {
		return 0, err
	}
	node, err := p.Parse()
	if err != nil {
		return 0, err
	}
	return Eval(node)
}

// FormatResult renders v the way the shell prints it: integral values
// without a decimal part, everything else in shortest float form.
func FormatResult(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
