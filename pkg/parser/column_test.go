package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tablekeeper/chddl/pkg/ast"

	. "github.com/tablekeeper/chddl/pkg/parser"
)

func parseColumn(t *testing.T, sql string) (*ast.ColumnDeclaration, bool) {
	t.Helper()

	c := newCursor(t, sql)
	node, ok := c.Parse(ColumnDeclaration())
	if !ok {
		return nil, false
	}
	return node.(*ast.ColumnDeclaration), true
}

func TestColumnDeclaration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, *ast.ColumnDeclaration)
	}{
		{
			name:  "name and type",
			input: "user_id UInt64",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				require.Equal(t, "user_id", col.Name)
				require.Equal(t, "UInt64", col.Type.(*ast.Function).Name)
				require.Nil(t, col.Default)
				require.Empty(t, col.DefaultSpecifier)
			},
		},
		{
			name:  "type with default",
			input: "name String DEFAULT 'Anonymous'",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				require.Equal(t, "String", col.Type.(*ast.Function).Name)
				require.Equal(t, "DEFAULT", col.DefaultSpecifier)
				require.Equal(t, "'Anonymous'", col.Default.(*ast.Literal).Text)
			},
		},
		{
			name:  "default without type",
			input: "foo DEFAULT 1",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				require.Nil(t, col.Type)
				require.Equal(t, "DEFAULT", col.DefaultSpecifier)
				require.Equal(t, "1", col.Default.(*ast.Literal).Text)
			},
		},
		{
			name:  "lowercase modifier is normalized",
			input: "foo default 1",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				require.Nil(t, col.Type)
				require.Equal(t, "DEFAULT", col.DefaultSpecifier)
			},
		},
		{
			name:  "materialized expression",
			input: "total MATERIALIZED price * quantity",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				require.Nil(t, col.Type)
				require.Equal(t, "MATERIALIZED", col.DefaultSpecifier)
				require.Equal(t, "price * quantity", ast.String(col.Default))
			},
		},
		{
			name:  "alias",
			input: "full_name ALIAS concat(first, last)",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				require.Equal(t, "ALIAS", col.DefaultSpecifier)
				require.Equal(t, "concat(first, last)", ast.String(col.Default))
			},
		},
		{
			name:  "type and default together",
			input: "foo UInt8 DEFAULT 1",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				require.Equal(t, "UInt8", col.Type.(*ast.Function).Name)
				require.Equal(t, "DEFAULT", col.DefaultSpecifier)
				require.Equal(t, "1", col.Default.(*ast.Literal).Text)
			},
		},
		{
			name:  "parametric type",
			input: "code FixedString(10)",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				typ := col.Type.(*ast.Function)
				require.Equal(t, "FixedString", typ.Name)
				require.Len(t, typ.Arguments.Items, 1)
				require.Equal(t, "10", typ.Arguments.Items[0].(*ast.Literal).Text)
			},
		},
		{
			name:  "comment",
			input: "email String COMMENT 'contact address'",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				require.Equal(t, "'contact address'", col.Comment.(*ast.Literal).Text)
			},
		},
		{
			name:  "codec",
			input: "payload String CODEC(ZSTD(3), LZ4)",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				codec := col.Codec.(*ast.Function)
				require.Equal(t, "CODEC", codec.Name)
				require.Len(t, codec.Arguments.Items, 2)
				require.Equal(t, "ZSTD(3)", ast.String(codec.Arguments.Items[0]))
				require.Equal(t, "LZ4", ast.String(codec.Arguments.Items[1]))
			},
		},
		{
			name:  "codec before comment",
			input: "payload String CODEC(LZ4) COMMENT 'raw'",
			validate: func(t *testing.T, col *ast.ColumnDeclaration) {
				require.NotNil(t, col.Codec)
				require.NotNil(t, col.Comment)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, ok := parseColumn(t, tt.input)
			require.True(t, ok)
			tt.validate(t, col)
		})
	}
}

func TestColumnDeclarationRejectsBareName(t *testing.T) {
	t.Parallel()

	_, ok := parseColumn(t, "foo")
	require.False(t, ok)
}

func TestColumnDeclarationModifierCommits(t *testing.T) {
	t.Parallel()

	// Once DEFAULT is consumed a missing expression fails the whole
	// declaration instead of reinterpreting the keyword as a type.
	_, ok := parseColumn(t, "foo DEFAULT")
	require.False(t, ok)

	_, ok = parseColumn(t, "foo MATERIALIZED,")
	require.False(t, ok)
}

func TestColumnDeclarationKeywordWordBoundary(t *testing.T) {
	t.Parallel()

	// DEFAULTX is an ordinary identifier, so it is consumed as the type.
	c := newCursor(t, "foo DEFAULTX 1")
	node, ok := c.Parse(ColumnDeclaration())
	require.True(t, ok)

	col := node.(*ast.ColumnDeclaration)
	require.Equal(t, "DEFAULTX", col.Type.(*ast.Function).Name)
	require.Nil(t, col.Default)
	require.False(t, c.AtEnd())
}

func TestColumnDeclarationFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "foo UInt8", want: "foo UInt8"},
		{input: "foo default 1", want: "foo DEFAULT 1"},
		{input: "foo UInt8 default 1", want: "foo UInt8 DEFAULT 1"},
		{input: "ts DateTime default now()", want: "ts DateTime DEFAULT now()"},
		{input: "total materialized price * quantity", want: "total MATERIALIZED price * quantity"},
		// Canonical order is type, default, comment, codec regardless of
		// the order written.
		{
			input: "payload String codec(ZSTD(3)) comment 'raw'",
			want:  "payload String COMMENT 'raw' CODEC(ZSTD(3))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			col, ok := parseColumn(t, tt.input)
			require.True(t, ok)
			require.Equal(t, tt.want, ast.String(col))
		})
	}
}

func TestColumnDeclarationList(t *testing.T) {
	t.Parallel()

	c := newCursor(t, "a UInt8, b String, c DEFAULT a + 1")
	node, ok := c.Parse(ColumnDeclarationList())
	require.True(t, ok)
	require.True(t, c.AtEnd())

	list := node.(*ast.ExpressionList)
	require.Len(t, list.Items, 3)
	require.Equal(t, "a", list.Items[0].(*ast.ColumnDeclaration).Name)
	require.Equal(t, "b", list.Items[1].(*ast.ColumnDeclaration).Name)
	require.Equal(t, "c", list.Items[2].(*ast.ColumnDeclaration).Name)
}

func TestNameTypePairList(t *testing.T) {
	t.Parallel()

	c := newCursor(t, "CounterID UInt32, URL String")
	node, ok := c.Parse(NameTypePairList())
	require.True(t, ok)

	list := node.(*ast.ExpressionList)
	require.Len(t, list.Items, 2)
	require.Equal(t, "CounterID UInt32", ast.String(list.Items[0]))
	require.Equal(t, "URL String", ast.String(list.Items[1]))
}
