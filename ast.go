package interp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Expr is a node in the abstract syntax tree. The variant set is closed:
// a parsed tree contains only NumberLit and BinaryExpr nodes.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// NumberLit is a non-negative integer literal.
type NumberLit struct {
	Tok Token
}

func (n *NumberLit) exprNode() {}

func (n *NumberLit) String() string {
	return strconv.FormatInt(n.Tok.Value, 10)
}

// BinaryExpr applies one of + - * / to two sub-expressions. Left and
// Right belong to this node alone; the tree has no sharing.
type BinaryExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

func (b *BinaryExpr) exprNode() {}

// String renders the expression with single spaces around operators and
// every binary node parenthesized, so the result tokenizes back to an
// equivalent sequence.
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// WriteTree writes an indented rendering of the tree rooted at node.
func WriteTree(w io.Writer, node Expr) {
	writeTree(w, node, 0)
}

func writeTree(w io.Writer, node Expr, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *NumberLit:
		fmt.Fprintf(w, "%sNumberLit(%d)\n", indent, n.Tok.Value)
	case *BinaryExpr:
		fmt.Fprintf(w, "%sBinaryExpr %s\n", indent, n.Op)
		writeTree(w, n.Left, depth+1)
		writeTree(w, n.Right, depth+1)
	default:
		fmt.Fprintf(w, "%sunknown node %T\n", indent, node)
	}
}
