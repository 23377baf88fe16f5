// Package parser implements a hand-written recursive-descent parser for
// ClickHouse DDL: CREATE/ATTACH TABLE, DATABASE and VIEW statements.
//
// The grammar is built from small composable parser units. Every unit
// attempts a match at the shared cursor; on success the cursor advances
// exactly past the consumed tokens, on failure the cursor is restored so
// the caller can try a sibling alternative. The cursor tracks the furthest
// position any attempt reached, so a terminal failure reports the most
// informative location rather than the first mismatch.
//
//	stmt, err := parser.ParseSQL("CREATE TABLE t (id UInt64) ENGINE = Log")
//	if err != nil {
//	    var perr *parser.ParseError
//	    if errors.As(err, &perr) {
//	        // perr.Pos and perr.Expected locate the deepest failure
//	    }
//	}
package parser

import (
	"strings"

	"github.com/tablekeeper/chddl/pkg/ast"
)

// Parser is one grammar unit. Implementations live in this package; callers
// run them through Cursor.Parse, Cursor.Ignore and Cursor.Check, which
// enforce the restore-on-failure discipline.
type Parser interface {
	// Name identifies the construct in expected-set diagnostics.
	Name() string

	// parse attempts a match at the cursor. It may leave the cursor
	// anywhere on failure; Cursor.Parse restores it.
	parse(c *Cursor) (ast.Node, bool)
}

// Parse attempts p at the cursor. On success the cursor has advanced past
// the consumed tokens; on failure it is exactly where it was, as if the
// attempt never happened. Marker parsers (keywords, symbols) succeed with a
// nil node.
func (c *Cursor) Parse(p Parser) (ast.Node, bool) {
	save := c.pos
	node, ok := p.parse(c)
	c.observe(c.pos, p.Name(), ok)
	if !ok {
		c.pos = save
		return nil, false
	}
	return node, true
}

// Ignore attempts p, discarding any produced node. Used for syntactic
// markers whose presence is all that matters.
func (c *Cursor) Ignore(p Parser) bool {
	_, ok := c.Parse(p)
	return ok
}

// Check reports whether p matches at the cursor without consuming input,
// regardless of the outcome.
func (c *Cursor) Check(p Parser) bool {
	save := c.pos
	ok := c.Ignore(p)
	c.pos = save
	return ok
}

type keyword struct {
	words []string
}

// Keyword matches a case-insensitive keyword, or a space-separated sequence
// of them such as "IF NOT EXISTS".
func Keyword(kw string) Parser {
	return keyword{words: strings.Fields(kw)}
}

func (k keyword) Name() string { return strings.Join(k.words, " ") }

func (k keyword) parse(c *Cursor) (ast.Node, bool) {
	for _, w := range k.words {
		t := c.Peek()
		if t.Type != tokIdent || !strings.EqualFold(t.Value, w) {
			return nil, false
		}
		c.Advance()
	}
	return nil, true
}

type symbol struct {
	text string
}

// Symbol matches a punctuation or operator token by its exact text.
func Symbol(text string) Parser {
	return symbol{text: text}
}

func (s symbol) Name() string { return "'" + s.text + "'" }

func (s symbol) parse(c *Cursor) (ast.Node, bool) {
	t := c.Peek()
	if t.EOF() || t.Value != s.text {
		return nil, false
	}
	switch t.Type {
	case tokIdent, tokString, tokNumber, tokBacktickIdent:
		return nil, false
	}
	c.Advance()
	return nil, true
}

type identifier struct{}

// Identifier matches a single bare or backquoted identifier and produces an
// ast.Identifier.
func Identifier() Parser { return identifier{} }

func (identifier) Name() string { return "identifier" }

func (identifier) parse(c *Cursor) (ast.Node, bool) {
	t := c.Peek()
	switch t.Type {
	case tokIdent:
		c.Advance()
		return &ast.Identifier{Name: t.Value}, true
	case tokBacktickIdent:
		c.Advance()
		return &ast.Identifier{Name: unquoteBacktick(t.Value)}, true
	}
	return nil, false
}

type compoundIdentifier struct{}

// CompoundIdentifier matches a possibly dotted identifier such as
// `Hits.URL` and produces an ast.Identifier holding the joined name.
func CompoundIdentifier() Parser { return compoundIdentifier{} }

func (compoundIdentifier) Name() string { return "compound identifier" }

func (compoundIdentifier) parse(c *Cursor) (ast.Node, bool) {
	first, ok := c.Parse(Identifier())
	if !ok {
		return nil, false
	}
	name := first.(*ast.Identifier).Name

	for {
		save := c.Mark()
		if !c.Ignore(Symbol(".")) {
			break
		}
		part, ok := c.Parse(Identifier())
		if !ok {
			c.Reset(save)
			break
		}
		name += "." + part.(*ast.Identifier).Name
	}
	return &ast.Identifier{Name: name}, true
}

type literal struct{}

// Literal matches a number or string literal, preserving its source text.
func Literal() Parser { return literal{} }

func (literal) Name() string { return "literal" }

func (literal) parse(c *Cursor) (ast.Node, bool) {
	t := c.Peek()
	if t.Type != tokNumber && t.Type != tokString {
		return nil, false
	}
	c.Advance()
	return &ast.Literal{Text: t.Value}, true
}

type stringLiteral struct{}

// StringLiteral matches only a string literal, e.g. a COMMENT value.
func StringLiteral() Parser { return stringLiteral{} }

func (stringLiteral) Name() string { return "string literal" }

func (stringLiteral) parse(c *Cursor) (ast.Node, bool) {
	t := c.Peek()
	if t.Type != tokString {
		return nil, false
	}
	c.Advance()
	return &ast.Literal{Text: t.Value}, true
}

type alternation struct {
	name string
	alts []Parser
}

func (a alternation) Name() string { return a.name }

// parse tries the alternatives in order. Cursor.Parse restores the cursor
// after each failed branch, so every alternative observes the same starting
// position; the first full match commits.
func (a alternation) parse(c *Cursor) (ast.Node, bool) {
	for _, alt := range a.alts {
		if node, ok := c.Parse(alt); ok {
			return node, true
		}
	}
	return nil, false
}

func unquoteBacktick(v string) string {
	v = strings.TrimPrefix(v, "`")
	v = strings.TrimSuffix(v, "`")
	return strings.ReplaceAll(v, "\\`", "`")
}
