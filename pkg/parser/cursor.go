package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

type (
	// Cursor is the read position within one tokenized statement. All
	// parsers of a single parse invocation share one cursor; a cursor
	// must not be shared across concurrent parses.
	//
	// Savepoints are plain integers: capturing one before an attempt and
	// restoring it on failure is the whole backtracking mechanism, and a
	// restore is O(1).
	//
	// The cursor also tracks the furthest position any attempt reached
	// and the names of the constructs attempted there. Terminal failures
	// report that position instead of wherever the first alternative
	// gave up.
	Cursor struct {
		source   string
		tokens   []lexer.Token
		pos      int
		furthest int
		expected []string
	}

	// ParseError is the terminal failure for one parse invocation,
	// carrying the furthest position reached and the constructs expected
	// there.
	ParseError struct {
		Pos      lexer.Position
		Expected []string
	}
)

// Error reports the furthest position reached and what was expected there.
func (e *ParseError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("syntax error at line %d, column %d", e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s",
		e.Pos.Line, e.Pos.Column, strings.Join(e.Expected, " or "))
}

// NewCursor tokenizes sql and returns a cursor positioned at its start.
func NewCursor(sql string) (*Cursor, error) {
	tokens, err := tokenize(sql)
	if err != nil {
		return nil, err
	}
	return &Cursor{source: sql, tokens: tokens}, nil
}

// Peek returns the token at the cursor without consuming it.
func (c *Cursor) Peek() lexer.Token {
	if c.pos >= len(c.tokens) {
		return lexer.EOFToken(lexer.Position{Offset: len(c.source)})
	}
	return c.tokens[c.pos]
}

// Advance consumes and returns the token at the cursor.
func (c *Cursor) Advance() lexer.Token {
	t := c.Peek()
	if !t.EOF() {
		c.pos++
	}
	return t
}

// Mark returns a savepoint for the current position.
func (c *Cursor) Mark() int { return c.pos }

// Reset restores the cursor to a savepoint taken earlier.
func (c *Cursor) Reset(mark int) { c.pos = mark }

// AtEnd reports whether all input has been consumed.
func (c *Cursor) AtEnd() bool { return c.Peek().EOF() }

// Furthest returns the furthest position reached by any attempt so far. It
// never decreases over the life of the cursor.
func (c *Cursor) Furthest() int { return c.furthest }

// Expected returns the construct names attempted at the furthest position.
func (c *Cursor) Expected() []string {
	return append([]string(nil), c.expected...)
}

// Err builds the terminal ParseError for the current diagnostics state.
func (c *Cursor) Err() *ParseError {
	return &ParseError{Pos: c.positionAt(c.furthest), Expected: c.Expected()}
}

// errUnexpected reports leftover input after a complete statement.
func (c *Cursor) errUnexpected() *ParseError {
	return &ParseError{Pos: c.positionAt(c.pos), Expected: []string{"end of query"}}
}

func (c *Cursor) positionAt(pos int) lexer.Position {
	if pos >= len(c.tokens) {
		return lexer.Position{Offset: len(c.source)}
	}
	return c.tokens[pos].Pos
}

// observe records the position reached by a finished attempt, keeping the
// furthest-position watermark monotone. A failed attempt at the watermark
// contributes its construct name to the expected set.
func (c *Cursor) observe(reached int, name string, ok bool) {
	if reached > c.furthest {
		c.furthest = reached
		c.expected = c.expected[:0]
	}
	if !ok && reached == c.furthest {
		c.addExpected(name)
	}
}

func (c *Cursor) addExpected(name string) {
	for _, e := range c.expected {
		if e == name {
			return
		}
	}
	c.expected = append(c.expected, name)
}

// spanText returns the source text covered by the half-open token range
// [from, to).
func (c *Cursor) spanText(from, to int) string {
	if from >= to || from >= len(c.tokens) {
		return ""
	}
	start := c.tokens[from].Pos.Offset
	last := c.tokens[to-1]
	end := last.Pos.Offset + len(last.Value)
	return c.source[start:end]
}
