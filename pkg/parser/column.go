package parser

import (
	"strings"

	"github.com/tablekeeper/chddl/pkg/ast"
)

type nameTypePair struct {
	name Parser
}

// NameTypePair matches `name type` where name is a simple identifier, e.g.
// `URL String`.
func NameTypePair() Parser {
	return nameTypePair{name: Identifier()}
}

// CompoundNameTypePair matches `name type` where the name may contain dots,
// e.g. `Hits.URL String`.
func CompoundNameTypePair() Parser {
	return nameTypePair{name: CompoundIdentifier()}
}

func (nameTypePair) Name() string { return "name and type pair" }

func (p nameTypePair) parse(c *Cursor) (ast.Node, bool) {
	name, ok := c.Parse(p.name)
	if !ok {
		return nil, false
	}
	typ, ok := c.Parse(IdentifierWithOptionalParameters())
	if !ok {
		return nil, false
	}
	return &ast.NameTypePair{Name: name.(*ast.Identifier).Name, Type: typ}, true
}

// The three mutually exclusive column modifier keywords, tried in this
// order with first-match-wins.
var modifierKeywords = []Parser{
	Keyword("DEFAULT"),
	Keyword("MATERIALIZED"),
	Keyword("ALIAS"),
}

type columnDeclaration struct {
	name Parser
}

// ColumnDeclaration matches one column spec: a mandatory name, an optional
// type, an optional DEFAULT/MATERIALIZED/ALIAS expression and optional
// COMMENT and CODEC clauses.
//
// The type is conditionally optional: it must be present unless the name is
// immediately followed by one of the modifier keywords, in which case the
// type is inferred later from the expression. A bare name with neither type
// nor modifier is rejected.
func ColumnDeclaration() Parser {
	return columnDeclaration{name: Identifier()}
}

// CompoundColumnDeclaration is ColumnDeclaration with a dotted column name.
func CompoundColumnDeclaration() Parser {
	return columnDeclaration{name: CompoundIdentifier()}
}

func (columnDeclaration) Name() string { return "column declaration" }

func (d columnDeclaration) parse(c *Cursor) (ast.Node, bool) {
	name, ok := c.Parse(d.name)
	if !ok {
		return nil, false
	}

	// The name is followed by a type unless a modifier keyword comes
	// next. The keyword probe must not count as consumption of type
	// syntax, so the cursor is pinned at the fallback position first.
	var typ ast.Node
	fallback := c.Mark()
	if !c.Check(modifierKeywords[0]) && !c.Check(modifierKeywords[1]) && !c.Check(modifierKeywords[2]) {
		typ, _ = c.Parse(IdentifierWithOptionalParameters())
	} else {
		c.Reset(fallback)
	}

	var specifier string
	var defaultExpr ast.Node
	beforeSpecifier := c.Mark()
	if c.Ignore(modifierKeywords[0]) || c.Ignore(modifierKeywords[1]) || c.Ignore(modifierKeywords[2]) {
		specifier = strings.ToUpper(c.tokens[beforeSpecifier].Value)

		// The keyword commits the grammar: an expression must follow.
		defaultExpr, ok = c.Parse(Expression())
		if !ok {
			return nil, false
		}
	} else if typ == nil {
		// Reject a sole column name without type.
		return nil, false
	}

	col := &ast.ColumnDeclaration{
		Name:             name.(*ast.Identifier).Name,
		Type:             typ,
		DefaultSpecifier: specifier,
		Default:          defaultExpr,
	}

	for i := 0; i < 2; i++ {
		switch {
		case col.Comment == nil && c.Ignore(Keyword("COMMENT")):
			comment, ok := c.Parse(StringLiteral())
			if !ok {
				return nil, false
			}
			col.Comment = comment
		case col.Codec == nil && c.Check(Keyword("CODEC")):
			codec, ok := parseCodec(c)
			if !ok {
				return nil, false
			}
			col.Codec = codec
		default:
			return col, true
		}
	}
	return col, true
}

// parseCodec parses `CODEC '(' codec {',' codec} ')'` into a Function named
// CODEC whose arguments are the individual codec descriptors.
func parseCodec(c *Cursor) (ast.Node, bool) {
	if !c.Ignore(Keyword("CODEC")) {
		return nil, false
	}
	if !c.Ignore(Symbol("(")) {
		return nil, false
	}

	args := &ast.ExpressionList{}
	for {
		spec, ok := c.Parse(IdentifierWithOptionalParameters())
		if !ok {
			return nil, false
		}
		args.Items = append(args.Items, spec)
		if !c.Ignore(Symbol(",")) {
			break
		}
	}
	if !c.Ignore(Symbol(")")) {
		return nil, false
	}
	return &ast.Function{Name: "CODEC", Arguments: args}, true
}

type columnDeclarationList struct{}

// ColumnDeclarationList matches a comma-separated list of column
// declarations, preserving declaration order.
func ColumnDeclarationList() Parser { return columnDeclarationList{} }

func (columnDeclarationList) Name() string { return "column declaration list" }

func (columnDeclarationList) parse(c *Cursor) (ast.Node, bool) {
	list := &ast.ExpressionList{}
	for {
		col, ok := c.Parse(ColumnDeclaration())
		if !ok {
			return nil, false
		}
		list.Items = append(list.Items, col)
		if !c.Ignore(Symbol(",")) {
			break
		}
	}
	return list, true
}

type nameTypePairList struct{}

// NameTypePairList matches a comma-separated list of name-type pairs.
func NameTypePairList() Parser { return nameTypePairList{} }

func (nameTypePairList) Name() string { return "name and type pair list" }

func (nameTypePairList) parse(c *Cursor) (ast.Node, bool) {
	list := &ast.ExpressionList{}
	for {
		pair, ok := c.Parse(NameTypePair())
		if !ok {
			return nil, false
		}
		list.Items = append(list.Items, pair)
		if !c.Ignore(Symbol(",")) {
			break
		}
	}
	return list, true
}
