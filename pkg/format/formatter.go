// Package format renders parsed DDL statements as clean, consistently
// indented SQL.
//
// It separates presentation from parsing: pkg/parser produces the tree,
// this package decides line breaks, indentation and statement terminators.
//
//	stmt, _ := parser.ParseSQL("create table t(id UInt64) engine=Log")
//	fmt.Println(format.Statement(stmt))
//
// Output:
//
//	CREATE TABLE t
//	(
//	    id UInt64
//	)
//	ENGINE = Log;
package format

import (
	"io"

	"github.com/pkg/errors"
	"github.com/tablekeeper/chddl/pkg/ast"
)

// Options controls formatting behavior.
type Options struct {
	// OneLine renders each statement on a single line.
	OneLine bool

	// Hilite wraps keywords in ANSI escapes for terminal output.
	Hilite bool

	// TrailingSemicolon appends ';' to every statement.
	TrailingSemicolon bool
}

// Defaults is the standard multi-line style used by the CLI.
var Defaults = Options{TrailingSemicolon: true}

// Formatter renders statements with fixed options.
type Formatter struct {
	options Options
}

// New creates a Formatter with the given options.
func New(options Options) *Formatter {
	return &Formatter{options: options}
}

// Statement renders a single statement to a string.
func (f *Formatter) Statement(stmt *ast.CreateQuery) string {
	out := ast.Format(stmt, f.settings())
	if f.options.TrailingSemicolon {
		out += ";"
	}
	return out
}

// Write renders the statements to w, blank-line separated.
func (f *Formatter) Write(w io.Writer, stmts ...*ast.CreateQuery) error {
	for i, stmt := range stmts {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return errors.Wrap(err, "writing statement separator")
			}
		}
		if _, err := io.WriteString(w, f.Statement(stmt)); err != nil {
			return errors.Wrap(err, "writing statement")
		}
	}
	return nil
}

func (f *Formatter) settings() ast.FormatSettings {
	return ast.FormatSettings{OneLine: f.options.OneLine, Hilite: f.options.Hilite}
}

// Statement renders one statement with default options.
func Statement(stmt *ast.CreateQuery) string {
	return New(Defaults).Statement(stmt)
}

// Format renders the statements to w with the given options.
func Format(w io.Writer, options Options, stmts ...*ast.CreateQuery) error {
	return New(options).Write(w, stmts...)
}
