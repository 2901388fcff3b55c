package interp

import "fmt"

// EvalError reports a failure while evaluating a parsed tree.
type EvalError struct {
	msg string
}

func (e *EvalError) Error() string {
	return "evaluation error: " + e.msg
}

// Eval computes the value of the tree rooted at node. Division is true
// division on float64; dividing by zero is an error.
func Eval(node Expr) (float64, error) {
	switch n := node.(type) {
	case *NumberLit:
		return float64(n.Tok.Value), nil
	case *BinaryExpr:
		left, err := Eval(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op.Type {
		case Plus:
			return left + right, nil
		case Minus:
			return left - right, nil
		case Star:
			return left * right, nil
		case Slash:
			if right == 0 {
				return 0, &EvalError{msg: "division by zero"}
			}
			return left / right, nil
		}
		return 0, &EvalError{msg: fmt.Sprintf("unsupported operator %s", n.Op)}
	}
	return 0, &EvalError{msg: fmt.Sprintf("unsupported node %T", node)}
}
