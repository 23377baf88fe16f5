package ast

import "strings"

type (
	// BinaryExpr is an infix operation inside a default/materialized/alias
	// expression, e.g. `foo + 1` or `status = 'active'`.
	BinaryExpr struct {
		Op    string
		Left  Node
		Right Node
	}

	// UnaryExpr is a prefix operation, e.g. `-1` or `NOT flag`.
	UnaryExpr struct {
		Op   string
		Expr Node
	}

	// TernaryExpr is the conditional operator `cond ? then : else`.
	TernaryExpr struct {
		Cond Node
		Then Node
		Else Node
	}

	// ParenExpr preserves explicit grouping parentheses.
	ParenExpr struct {
		Expr Node
	}

	// CastExpr is `CAST(expr AS type)`. Type is always a Function node
	// produced by the type-in-cast-expression parser.
	CastExpr struct {
		Expr Node
		Type Node
	}
)

// Clone deep-copies both operands.
func (n *BinaryExpr) Clone() Node {
	return &BinaryExpr{Op: n.Op, Left: cloneNode(n.Left), Right: cloneNode(n.Right)}
}

// Children returns the operands left to right.
func (n *BinaryExpr) Children() []Node {
	return []Node{n.Left, n.Right}
}

// Format writes `left op right`.
func (n *BinaryExpr) Format(b *strings.Builder, s FormatSettings, f Frame) {
	n.Left.Format(b, s, f)
	b.WriteByte(' ')
	writeOperator(b, s, n.Op)
	b.WriteByte(' ')
	n.Right.Format(b, s, f)
}

// Clone deep-copies the operand.
func (n *UnaryExpr) Clone() Node {
	return &UnaryExpr{Op: n.Op, Expr: cloneNode(n.Expr)}
}

// Children returns the operand.
func (n *UnaryExpr) Children() []Node {
	return []Node{n.Expr}
}

// Format writes the operator and operand, spaced only for word operators.
func (n *UnaryExpr) Format(b *strings.Builder, s FormatSettings, f Frame) {
	writeOperator(b, s, n.Op)
	if isWordOperator(n.Op) {
		b.WriteByte(' ')
	}
	n.Expr.Format(b, s, f)
}

// Clone deep-copies all three branches.
func (n *TernaryExpr) Clone() Node {
	return &TernaryExpr{Cond: cloneNode(n.Cond), Then: cloneNode(n.Then), Else: cloneNode(n.Else)}
}

// Children returns condition, then-branch, else-branch.
func (n *TernaryExpr) Children() []Node {
	return []Node{n.Cond, n.Then, n.Else}
}

// Format writes `cond ? then : else`.
func (n *TernaryExpr) Format(b *strings.Builder, s FormatSettings, f Frame) {
	n.Cond.Format(b, s, f)
	b.WriteString(" ? ")
	n.Then.Format(b, s, f)
	b.WriteString(" : ")
	n.Else.Format(b, s, f)
}

// Clone deep-copies the grouped expression.
func (n *ParenExpr) Clone() Node {
	return &ParenExpr{Expr: cloneNode(n.Expr)}
}

// Children returns the grouped expression.
func (n *ParenExpr) Children() []Node {
	return []Node{n.Expr}
}

// Format writes `(expr)`.
func (n *ParenExpr) Format(b *strings.Builder, s FormatSettings, f Frame) {
	b.WriteByte('(')
	n.Expr.Format(b, s, f)
	b.WriteByte(')')
}

// Clone deep-copies the operand and the type node.
func (n *CastExpr) Clone() Node {
	return &CastExpr{Expr: cloneNode(n.Expr), Type: cloneNode(n.Type)}
}

// Children returns the operand and the type.
func (n *CastExpr) Children() []Node {
	return []Node{n.Expr, n.Type}
}

// Format writes `CAST(expr AS type)`.
func (n *CastExpr) Format(b *strings.Builder, s FormatSettings, f Frame) {
	writeKeyword(b, s, "CAST")
	b.WriteByte('(')
	n.Expr.Format(b, s, f)
	b.WriteByte(' ')
	writeKeyword(b, s, "AS")
	b.WriteByte(' ')
	n.Type.Format(b, s, f)
	b.WriteByte(')')
}

func writeOperator(b *strings.Builder, s FormatSettings, op string) {
	if isWordOperator(op) {
		writeKeyword(b, s, op)
		return
	}
	b.WriteString(op)
}

func isWordOperator(op string) bool {
	return op != "" && (op[0] >= 'A' && op[0] <= 'Z')
}
