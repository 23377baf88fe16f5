// Package ast defines the syntax tree produced by parsing ClickHouse DDL
// statements.
//
// Nodes form a closed set of variants. Every node owns its children
// exclusively: Clone produces a fully independent subtree, and Children is
// derived on demand from the typed fields so the traversal order can never
// drift from the structure.
//
// Formatting re-serializes a node to DDL text. The round-trip property holds
// for every parsed node: formatting and re-parsing yields a structurally
// equivalent tree.
package ast

import "strings"

type (
	// Node is implemented by every AST variant.
	Node interface {
		// Clone returns a deep copy sharing nothing with the receiver.
		Clone() Node

		// Children returns the owned child nodes in their fixed
		// structural order. The slice is rebuilt on every call.
		Children() []Node

		// Format writes the node as DDL text.
		Format(b *strings.Builder, s FormatSettings, f Frame)
	}

	// FormatSettings controls re-serialization of a tree.
	FormatSettings struct {
		// OneLine renders the statement without line breaks.
		OneLine bool

		// Hilite wraps keywords in ANSI escapes for terminal output.
		Hilite bool
	}

	// Frame carries per-branch formatting state down the tree.
	Frame struct {
		Indent int
	}
)

// ANSI escapes used when FormatSettings.Hilite is set.
const (
	hiliteKeyword = "\x1b[1m"
	hiliteNone    = "\x1b[0m"
)

const indentWidth = 4

// Format renders a node to a string with the given settings.
func Format(n Node, s FormatSettings) string {
	var b strings.Builder
	n.Format(&b, s, Frame{})
	return b.String()
}

// String renders a node on a single line without highlighting.
func String(n Node) string {
	return Format(n, FormatSettings{OneLine: true})
}

func writeKeyword(b *strings.Builder, s FormatSettings, kw string) {
	if s.Hilite {
		b.WriteString(hiliteKeyword)
	}
	b.WriteString(kw)
	if s.Hilite {
		b.WriteString(hiliteNone)
	}
}

func writeIndent(b *strings.Builder, f Frame) {
	b.WriteString(strings.Repeat(" ", indentWidth*f.Indent))
}

// backQuoteIfNeed quotes an identifier unless it is a plain word. Compound
// identifiers are quoted segment by segment so the dots stay bare.
func backQuoteIfNeed(name string) string {
	if !strings.Contains(name, ".") {
		return backQuoteSegment(name)
	}

	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = backQuoteSegment(p)
	}
	return strings.Join(parts, ".")
}

func backQuoteSegment(name string) string {
	if isBareWord(name) {
		return name
	}
	return "`" + strings.ReplaceAll(name, "`", "\\`") + "`"
}

func isBareWord(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func cloneNode(n Node) Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}
