package parser

import (
	"github.com/tablekeeper/chddl/pkg/ast"
)

type engineClause struct{}

// Engine matches `ENGINE '=' identifier-with-optional-parameters` and
// produces the engine descriptor as an ast.Function. Whether the clause may
// be omitted is decided by the caller.
func Engine() Parser { return engineClause{} }

func (engineClause) Name() string { return "ENGINE" }

func (engineClause) parse(c *Cursor) (ast.Node, bool) {
	if !c.Ignore(Keyword("ENGINE")) {
		return nil, false
	}
	if !c.Ignore(Symbol("=")) {
		return nil, false
	}
	return c.Parse(IdentifierWithOptionalParameters())
}
