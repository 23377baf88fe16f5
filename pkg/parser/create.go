package parser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tablekeeper/chddl/pkg/ast"
)

// CreateQuery matches every CREATE/ATTACH statement form:
//
//	{CREATE|ATTACH} [MATERIALIZED] VIEW [IF NOT EXISTS] [db.]name [ENGINE = e] [POPULATE] AS SELECT ...
//	{CREATE|ATTACH} TABLE [IF NOT EXISTS] [db.]name '(' columns ')' ENGINE = e
//	{CREATE|ATTACH} TABLE [IF NOT EXISTS] [db.]name AS [db2.]name2 [ENGINE = e]
//	{CREATE|ATTACH} TABLE [IF NOT EXISTS] [db.]name AS ENGINE = e SELECT ...
//	{CREATE|ATTACH} DATABASE name [ENGINE = e]
//
// The alternatives are tried in order; each failed attempt leaves the
// cursor untouched, and the first full match commits.
func CreateQuery() Parser {
	return alternation{
		name: "CREATE TABLE or ATTACH TABLE query",
		alts: []Parser{
			createView{},
			createTable{},
			createDatabase{},
		},
	}
}

// parseCreateAttach consumes the CREATE or ATTACH keyword, reporting which.
func parseCreateAttach(c *Cursor) (attach, ok bool) {
	if c.Ignore(Keyword("CREATE")) {
		return false, true
	}
	if c.Ignore(Keyword("ATTACH")) {
		return true, true
	}
	return false, false
}

// parseQualifiedName splits a compound identifier into an optional database
// qualifier and an object name. Only one dot level is meaningful here.
func parseQualifiedName(c *Cursor) (database, name string, ok bool) {
	node, ok := c.Parse(CompoundIdentifier())
	if !ok {
		return "", "", false
	}
	full := node.(*ast.Identifier).Name
	if i := strings.LastIndex(full, "."); i >= 0 {
		return full[:i], full[i+1:], true
	}
	return "", full, true
}

type createView struct{}

func (createView) Name() string { return "CREATE VIEW query" }

func (createView) parse(c *Cursor) (ast.Node, bool) {
	attach, ok := parseCreateAttach(c)
	if !ok {
		return nil, false
	}

	q := &ast.CreateQuery{Attach: attach, IsView: true}
	q.IsMaterialized = c.Ignore(Keyword("MATERIALIZED"))
	if !c.Ignore(Keyword("VIEW")) {
		return nil, false
	}

	// VIEW is consumed: from here every failure is a failure of the
	// whole statement, never a fall-through to another form.
	q.IfNotExists = c.Ignore(Keyword("IF NOT EXISTS"))
	if q.Database, q.Table, ok = parseQualifiedName(c); !ok {
		return nil, false
	}

	if engine, ok := c.Parse(Engine()); ok {
		q.Engine = engine
	}
	q.IsPopulate = c.Ignore(Keyword("POPULATE"))

	if !c.Ignore(Keyword("AS")) {
		return nil, false
	}
	sel, ok := c.Parse(selectBody{})
	if !ok {
		return nil, false
	}
	q.Select = sel
	return q, true
}

type createTable struct{}

func (createTable) Name() string { return "CREATE TABLE query" }

func (createTable) parse(c *Cursor) (ast.Node, bool) {
	attach, ok := parseCreateAttach(c)
	if !ok {
		return nil, false
	}
	if !c.Ignore(Keyword("TABLE")) {
		return nil, false
	}

	q := &ast.CreateQuery{Attach: attach}
	q.IfNotExists = c.Ignore(Keyword("IF NOT EXISTS"))
	if q.Database, q.Table, ok = parseQualifiedName(c); !ok {
		return nil, false
	}

	switch {
	case c.Ignore(Symbol("(")):
		// Table with an explicit column list; the engine clause is
		// mandatory in this form.
		cols, ok := c.Parse(ColumnDeclarationList())
		if !ok {
			return nil, false
		}
		if !c.Ignore(Symbol(")")) {
			return nil, false
		}
		q.Columns = cols.(*ast.ExpressionList)

		engine, ok := c.Parse(Engine())
		if !ok {
			return nil, false
		}
		q.Engine = engine

	case c.Ignore(Keyword("AS")):
		// AS is the pivot: ENGINE next means a select-backed table,
		// anything else is a copy of another table's structure.
		if c.Check(Keyword("ENGINE")) {
			engine, ok := c.Parse(Engine())
			if !ok {
				return nil, false
			}
			q.Engine = engine

			sel, ok := c.Parse(selectBody{})
			if !ok {
				return nil, false
			}
			q.Select = sel
		} else {
			if q.AsDatabase, q.AsTable, ok = parseQualifiedName(c); !ok {
				return nil, false
			}
			if engine, ok := c.Parse(Engine()); ok {
				q.Engine = engine
			}
		}

	default:
		return nil, false
	}
	return q, true
}

type createDatabase struct{}

func (createDatabase) Name() string { return "CREATE DATABASE query" }

func (createDatabase) parse(c *Cursor) (ast.Node, bool) {
	attach, ok := parseCreateAttach(c)
	if !ok {
		return nil, false
	}
	if !c.Ignore(Keyword("DATABASE")) {
		return nil, false
	}

	name, ok := c.Parse(Identifier())
	if !ok {
		return nil, false
	}

	q := &ast.CreateQuery{Attach: attach, Database: name.(*ast.Identifier).Name}
	if engine, ok := c.Parse(Engine()); ok {
		q.Engine = engine
	}
	return q, true
}

// selectBody captures a SELECT query verbatim up to the next statement
// boundary. The SELECT grammar itself is an external concern; the raw span
// is enough to re-serialize the statement and hand the body to a
// downstream query parser.
type selectBody struct{}

func (selectBody) Name() string { return "SELECT query" }

func (selectBody) parse(c *Cursor) (ast.Node, bool) {
	if !c.Check(Keyword("SELECT")) {
		return nil, false
	}

	start := c.Mark()
	for !c.AtEnd() && c.Peek().Value != ";" {
		c.Advance()
	}
	return &ast.SelectRaw{Text: c.spanText(start, c.Mark())}, true
}

// ParseSQL parses a single CREATE or ATTACH statement, optionally
// terminated by a semicolon. On failure the returned error is a
// *ParseError quoting the furthest position reached and the constructs
// expected there.
func ParseSQL(sql string) (*ast.CreateQuery, error) {
	c, err := NewCursor(sql)
	if err != nil {
		return nil, errors.Wrap(err, "tokenizing statement")
	}

	node, ok := c.Parse(CreateQuery())
	if !ok {
		return nil, c.Err()
	}
	c.Ignore(Symbol(";"))
	if !c.AtEnd() {
		return nil, c.errUnexpected()
	}
	return node.(*ast.CreateQuery), nil
}

// ParseStatements parses a batch of semicolon-separated CREATE/ATTACH
// statements, e.g. a schema file or a schema dump.
func ParseStatements(sql string) ([]*ast.CreateQuery, error) {
	c, err := NewCursor(sql)
	if err != nil {
		return nil, errors.Wrap(err, "tokenizing batch")
	}

	var statements []*ast.CreateQuery
	for {
		for c.Ignore(Symbol(";")) {
		}
		if c.AtEnd() {
			return statements, nil
		}

		node, ok := c.Parse(CreateQuery())
		if !ok {
			return nil, errors.Wrapf(c.Err(), "statement %d", len(statements)+1)
		}
		statements = append(statements, node.(*ast.CreateQuery))
	}
}
