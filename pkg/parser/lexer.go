package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ddlLexer is the lexical layer the parsers consume. Whitespace and
// comments are elided after tokenization, so keyword matches are whole-word
// by construction: `DEFAULTX` arrives as a single Ident token and can never
// be mistaken for `DEFAULT` plus a stray suffix.
var ddlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\r\n]*`},
	{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
	{Name: "String", Pattern: `'([^'\\]|\\.)*'`},
	{Name: "BacktickIdent", Pattern: "`([^`\\\\]|\\\\.)*`"},
	{Name: "Number", Pattern: `\d+(\.\d*)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "NotEq", Pattern: `!=|<>`},
	{Name: "LtEq", Pattern: `<=`},
	{Name: "GtEq", Pattern: `>=`},
	{Name: "Concat", Pattern: `\|\|`},
	{Name: "Punct", Pattern: `[(),.;=+\-*/%<>\[\]!?:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var symbols = ddlLexer.Symbols()

var (
	tokComment          = symbols["Comment"]
	tokMultilineComment = symbols["MultilineComment"]
	tokString           = symbols["String"]
	tokBacktickIdent    = symbols["BacktickIdent"]
	tokNumber           = symbols["Number"]
	tokIdent            = symbols["Ident"]
	tokWhitespace       = symbols["Whitespace"]
)

// tokenize materializes the whole input as a token slice, dropping
// whitespace and comments. The EOF token is kept as the final element.
func tokenize(sql string) ([]lexer.Token, error) {
	lx, err := ddlLexer.LexString("", sql)
	if err != nil {
		return nil, err
	}

	all, err := lexer.ConsumeAll(lx)
	if err != nil {
		return nil, err
	}

	tokens := make([]lexer.Token, 0, len(all))
	for _, t := range all {
		if t.Type == tokWhitespace || t.Type == tokComment || t.Type == tokMultilineComment {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}
