package parser_test

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/require"

	. "github.com/tablekeeper/chddl/pkg/parser"
)

func TestCursorMarkReset(t *testing.T) {
	t.Parallel()

	c := newCursor(t, "a b c")
	save := c.Mark()
	c.Advance()
	c.Advance()
	require.Equal(t, "c", c.Peek().Value)

	c.Reset(save)
	require.Equal(t, "a", c.Peek().Value)
}

func TestCursorAdvanceStopsAtEOF(t *testing.T) {
	t.Parallel()

	c := newCursor(t, "a")
	c.Advance()
	require.True(t, c.AtEnd())

	// Advancing past the end is harmless and stays at EOF.
	c.Advance()
	c.Advance()
	require.True(t, c.AtEnd())
	require.True(t, c.Peek().EOF())
}

func TestCursorFurthestIsMonotone(t *testing.T) {
	t.Parallel()

	c := newCursor(t, "a b")
	require.Equal(t, 0, c.Furthest())

	require.False(t, c.Ignore(Keyword("X")))
	require.Equal(t, 0, c.Furthest())
	require.Equal(t, []string{"X"}, c.Expected())

	// A deeper attempt moves the watermark and clears the stale
	// expectations.
	require.True(t, c.Ignore(Keyword("a")))
	require.Equal(t, 1, c.Furthest())
	require.Empty(t, c.Expected())

	// Backtracking never lowers it.
	c.Reset(0)
	require.False(t, c.Ignore(Keyword("X")))
	require.Equal(t, 1, c.Furthest())
	require.Empty(t, c.Expected())
}

func TestCursorExpectedCollectsAtFurthest(t *testing.T) {
	t.Parallel()

	c := newCursor(t, "a")
	require.False(t, c.Ignore(Keyword("X")))
	require.False(t, c.Ignore(Keyword("Y")))
	require.False(t, c.Ignore(Keyword("X")))

	// Deduplicated, in first-attempt order.
	require.Equal(t, []string{"X", "Y"}, c.Expected())
}

func TestCursorFailedParseRestoresPosition(t *testing.T) {
	t.Parallel()

	c := newCursor(t, "IF NOT a")
	_, ok := c.Parse(Keyword("IF NOT EXISTS"))
	require.False(t, ok)
	require.Equal(t, 0, c.Mark())

	// The failure consumed two tokens before giving up; the watermark
	// keeps that depth even though the position was restored.
	require.Equal(t, 2, c.Furthest())
}

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ParseError{
		Pos:      lexer.Position{Line: 2, Column: 5},
		Expected: []string{"identifier", "literal"},
	}
	require.Equal(t, "syntax error at line 2, column 5: expected identifier or literal", err.Error())

	bare := &ParseError{Pos: lexer.Position{Line: 1, Column: 1}}
	require.Equal(t, "syntax error at line 1, column 1", bare.Error())
}

func TestNewCursorRejectsBadInput(t *testing.T) {
	t.Parallel()

	// An unterminated string literal fails at the lexical layer.
	_, err := NewCursor("CREATE TABLE t (s String DEFAULT 'oops")
	require.Error(t, err)
}
