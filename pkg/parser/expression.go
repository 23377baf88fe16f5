package parser

import (
	"github.com/tablekeeper/chddl/pkg/ast"
)

// expression parses the values of DEFAULT/MATERIALIZED/ALIAS clauses and
// the arguments of parametric types: literals, identifiers, function calls,
// CAST, unary and binary operators, and the ternary conditional. Precedence
// climbing over a fixed operator table; everything is left-associative.
type expression struct{}

// Expression matches a general value expression up to the ternary
// conditional operator.
func Expression() Parser { return expression{} }

func (expression) Name() string { return "expression" }

func (expression) parse(c *Cursor) (ast.Node, bool) {
	return parseTernary(c)
}

// parseTernary parses `cond ['?' then ':' else]`. Once '?' is consumed the
// remainder is mandatory.
func parseTernary(c *Cursor) (ast.Node, bool) {
	cond, ok := parseBinary(c, 0)
	if !ok {
		return nil, false
	}
	if !c.Ignore(Symbol("?")) {
		return cond, true
	}

	then, ok := parseTernary(c)
	if !ok {
		return nil, false
	}
	if !c.Ignore(Symbol(":")) {
		return nil, false
	}
	els, ok := parseTernary(c)
	if !ok {
		return nil, false
	}
	return &ast.TernaryExpr{Cond: cond, Then: then, Else: els}, true
}

type binaryOp struct {
	op         string
	precedence int
	word       bool // keyword operator, matched case-insensitively
}

// Lowest precedence first. Word operators are normalized to upper case in
// the tree.
var binaryOps = []binaryOp{
	{op: "OR", precedence: 1, word: true},
	{op: "AND", precedence: 2, word: true},
	{op: "=", precedence: 3},
	{op: "!=", precedence: 3},
	{op: "<>", precedence: 3},
	{op: "<=", precedence: 3},
	{op: ">=", precedence: 3},
	{op: "<", precedence: 3},
	{op: ">", precedence: 3},
	{op: "LIKE", precedence: 3, word: true},
	{op: "IN", precedence: 3, word: true},
	{op: "||", precedence: 4},
	{op: "+", precedence: 5},
	{op: "-", precedence: 5},
	{op: "*", precedence: 6},
	{op: "/", precedence: 6},
	{op: "%", precedence: 6},
}

func parseBinary(c *Cursor, minPrecedence int) (ast.Node, bool) {
	left, ok := parseUnary(c)
	if !ok {
		return nil, false
	}

	for {
		op, found := matchBinaryOp(c, minPrecedence)
		if !found {
			return left, true
		}

		// The operator commits this level: its right operand must
		// bind tighter.
		right, ok := parseBinary(c, op.precedence+1)
		if !ok {
			return nil, false
		}
		left = &ast.BinaryExpr{Op: op.op, Left: left, Right: right}
	}
}

func matchBinaryOp(c *Cursor, minPrecedence int) (binaryOp, bool) {
	for _, op := range binaryOps {
		if op.precedence < minPrecedence {
			continue
		}
		if op.word {
			if c.Ignore(Keyword(op.op)) {
				return op, true
			}
			continue
		}
		if c.Ignore(Symbol(op.op)) {
			return op, true
		}
	}
	return binaryOp{}, false
}

func parseUnary(c *Cursor) (ast.Node, bool) {
	switch {
	case c.Ignore(Keyword("NOT")):
		expr, ok := parseUnary(c)
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{Op: "NOT", Expr: expr}, true
	case c.Ignore(Symbol("-")):
		expr, ok := parseUnary(c)
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{Op: "-", Expr: expr}, true
	}
	return parsePrimary(c)
}

func parsePrimary(c *Cursor) (ast.Node, bool) {
	if node, ok := c.Parse(Literal()); ok {
		return node, true
	}

	if c.Ignore(Symbol("(")) {
		expr, ok := parseTernary(c)
		if !ok {
			return nil, false
		}
		if !c.Ignore(Symbol(")")) {
			return nil, false
		}
		return &ast.ParenExpr{Expr: expr}, true
	}

	if c.Check(Keyword("CAST")) {
		return parseCast(c)
	}

	name, ok := c.Parse(CompoundIdentifier())
	if !ok {
		return nil, false
	}
	ident := name.(*ast.Identifier)

	// A call only when '(' follows directly; otherwise a plain column or
	// constant reference.
	save := c.Mark()
	if args, ok := parseCallArguments(c); ok {
		return &ast.Function{Name: ident.Name, Arguments: args}, true
	}
	c.Reset(save)
	return ident, true
}

// parseCallArguments parses '(' [expr {',' expr}] ')'.
func parseCallArguments(c *Cursor) (*ast.ExpressionList, bool) {
	if !c.Ignore(Symbol("(")) {
		return nil, false
	}

	args := &ast.ExpressionList{}
	if c.Ignore(Symbol(")")) {
		return args, true
	}
	for {
		arg, ok := parseTernary(c)
		if !ok {
			return nil, false
		}
		args.Items = append(args.Items, arg)
		if !c.Ignore(Symbol(",")) {
			break
		}
	}
	if !c.Ignore(Symbol(")")) {
		return nil, false
	}
	return args, true
}

// parseCast parses `CAST '(' expr AS type ')'` with the type grammar shared
// with column declarations.
func parseCast(c *Cursor) (ast.Node, bool) {
	if !c.Ignore(Keyword("CAST")) {
		return nil, false
	}
	if !c.Ignore(Symbol("(")) {
		return nil, false
	}
	expr, ok := parseTernary(c)
	if !ok {
		return nil, false
	}
	if !c.Ignore(Keyword("AS")) {
		return nil, false
	}
	typ, ok := c.Parse(TypeInCastExpression())
	if !ok {
		return nil, false
	}
	if !c.Ignore(Symbol(")")) {
		return nil, false
	}
	return &ast.CastExpr{Expr: expr, Type: typ}, true
}
