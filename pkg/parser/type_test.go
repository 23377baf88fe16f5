package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tablekeeper/chddl/pkg/ast"

	. "github.com/tablekeeper/chddl/pkg/parser"
)

func TestIdentifierWithOptionalParameters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, *ast.Function)
	}{
		{
			name:  "bare type",
			input: "UInt8",
			validate: func(t *testing.T, fn *ast.Function) {
				require.Equal(t, "UInt8", fn.Name)
				require.Nil(t, fn.Arguments)
			},
		},
		{
			name:  "empty parameter list",
			input: "MergeTree()",
			validate: func(t *testing.T, fn *ast.Function) {
				require.Equal(t, "MergeTree", fn.Name)
				require.NotNil(t, fn.Arguments)
				require.Empty(t, fn.Arguments.Items)
			},
		},
		{
			name:  "literal parameter",
			input: "FixedString(10)",
			validate: func(t *testing.T, fn *ast.Function) {
				require.Equal(t, "FixedString", fn.Name)
				require.Len(t, fn.Arguments.Items, 1)
				require.Equal(t, "10", fn.Arguments.Items[0].(*ast.Literal).Text)
			},
		},
		{
			name:  "name type pair parameters",
			input: "Nested(CounterID UInt32, URL String)",
			validate: func(t *testing.T, fn *ast.Function) {
				require.Equal(t, "Nested", fn.Name)
				require.Len(t, fn.Arguments.Items, 2)

				pair := fn.Arguments.Items[0].(*ast.NameTypePair)
				require.Equal(t, "CounterID", pair.Name)
				require.Equal(t, "UInt32", pair.Type.(*ast.Function).Name)
			},
		},
		{
			name:  "nested parametric type",
			input: "Nested(UserAgentMajor FixedString(2))",
			validate: func(t *testing.T, fn *ast.Function) {
				pair := fn.Arguments.Items[0].(*ast.NameTypePair)
				require.Equal(t, "FixedString(2)", ast.String(pair.Type))
			},
		},
		{
			name:  "expression parameters",
			input: "Enum8('active' = 1, 'deleted' = 2)",
			validate: func(t *testing.T, fn *ast.Function) {
				require.Len(t, fn.Arguments.Items, 2)
				require.Equal(t, "'active' = 1", ast.String(fn.Arguments.Items[0]))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(t, tt.input)
			node, ok := c.Parse(IdentifierWithOptionalParameters())
			require.True(t, ok)
			require.True(t, c.AtEnd())
			tt.validate(t, node.(*ast.Function))
		})
	}
}

func TestIdentifierWithParametersRequiresParens(t *testing.T) {
	t.Parallel()

	c := newCursor(t, "UInt8")
	_, ok := c.Parse(IdentifierWithParameters())
	require.False(t, ok)
	require.Equal(t, 0, c.Mark())
}

func TestNestedTable(t *testing.T) {
	t.Parallel()

	c := newCursor(t, "Nested(Hits.URL String, Hits.Referer String)")
	node, ok := c.Parse(NestedTable())
	require.True(t, ok)

	fn := node.(*ast.Function)
	require.Equal(t, "Nested", fn.Name)
	require.Len(t, fn.Arguments.Items, 2)
	require.Equal(t, "Hits.URL String", ast.String(fn.Arguments.Items[0]))
}

func TestNestedTableRejectsNonPairArguments(t *testing.T) {
	t.Parallel()

	c := newCursor(t, "Nested(10)")
	_, ok := c.Parse(NestedTable())
	require.False(t, ok)
	require.Equal(t, 0, c.Mark())
}

func TestTypeInCastExpressionName(t *testing.T) {
	t.Parallel()

	// Same grammar as the column type parser; only the diagnostic name
	// differs.
	require.Equal(t, "type in cast expression", TypeInCastExpression().Name())
	require.NotEqual(t, TypeInCastExpression().Name(), IdentifierWithOptionalParameters().Name())
}
