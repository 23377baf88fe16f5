package parser

import (
	"github.com/tablekeeper/chddl/pkg/ast"
)

type identifierWithParameters struct{}

// IdentifierWithParameters matches `identifier '(' argument {',' argument}
// ')'`, e.g. FixedString(10) or Nested(CounterID UInt32, URL String). The
// parenthesized list is mandatory; the result is an ast.Function whose
// arguments may be name-type pairs, literals or nested parametric types.
func IdentifierWithParameters() Parser { return identifierWithParameters{} }

func (identifierWithParameters) Name() string { return "identifier with parameters" }

func (identifierWithParameters) parse(c *Cursor) (ast.Node, bool) {
	name, ok := c.Parse(Identifier())
	if !ok {
		return nil, false
	}
	args, ok := parseParenArguments(c)
	if !ok {
		return nil, false
	}
	return &ast.Function{Name: name.(*ast.Identifier).Name, Arguments: args}, true
}

// parseParenArguments parses '(' [argument {',' argument}] ')'. An empty
// list is legal: MergeTree() parses with zero arguments.
func parseParenArguments(c *Cursor) (*ast.ExpressionList, bool) {
	if !c.Ignore(Symbol("(")) {
		return nil, false
	}

	args := &ast.ExpressionList{}
	if c.Ignore(Symbol(")")) {
		return args, true
	}

	argument := alternation{
		name: "type argument",
		alts: []Parser{NestedTable(), NameTypePair(), Expression()},
	}
	for {
		arg, ok := c.Parse(argument)
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

type identifierWithOptionalParameters struct {
	name string
}

// IdentifierWithOptionalParameters matches a data type or table engine with
// or without parameters: UInt8 as well as FixedString(10). The result is an
// ast.Function; a bare identifier yields a nil argument list.
func IdentifierWithOptionalParameters() Parser {
	return identifierWithOptionalParameters{name: "identifier with optional parameters"}
}

// TypeInCastExpression is the same grammar used where a type appears inside
// CAST(...); it is distinguished only by name so diagnostics read correctly
// at CAST call sites.
func TypeInCastExpression() Parser {
	return identifierWithOptionalParameters{name: "type in cast expression"}
}

func (p identifierWithOptionalParameters) Name() string { return p.name }

func (p identifierWithOptionalParameters) parse(c *Cursor) (ast.Node, bool) {
	if node, ok := c.Parse(IdentifierWithParameters()); ok {
		return node, true
	}
	name, ok := c.Parse(Identifier())
	if !ok {
		return nil, false
	}
	return &ast.Function{Name: name.(*ast.Identifier).Name}, true
}

type nestedTable struct{}

// NestedTable matches a nested table type: an identifier followed by a
// parenthesized list of name-type pairs, e.g.
// Nested(CounterID UInt32, UserAgentMajor FixedString(2)).
func NestedTable() Parser { return nestedTable{} }

func (nestedTable) Name() string { return "nested table" }

func (nestedTable) parse(c *Cursor) (ast.Node, bool) {
	name, ok := c.Parse(Identifier())
	if !ok {
		return nil, false
	}
	if !c.Ignore(Symbol("(")) {
		return nil, false
	}

	args := &ast.ExpressionList{}
	for {
		pair, ok := c.Parse(CompoundNameTypePair())
		if !ok {
			return nil, false
		}
		args.Items = append(args.Items, pair)
		if !c.Ignore(Symbol(",")) {
			break
		}
	}
	if !c.Ignore(Symbol(")")) {
		return nil, false
	}
	return &ast.Function{Name: name.(*ast.Identifier).Name, Arguments: args}, true
}
