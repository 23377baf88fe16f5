package ast

import "strings"

type (
	// Identifier is a bare or compound (dotted) name.
	Identifier struct {
		Name string
	}

	// Literal is a number or string literal kept as its source text.
	Literal struct {
		Text string
	}

	// Function is the function-call-shaped node used for parametric data
	// types (FixedString(10)), table engines (MergeTree), codecs and
	// ordinary calls inside expressions. Arguments is nil when the name
	// appeared without a parenthesized list, and an empty list when it
	// appeared as name().
	Function struct {
		Name      string
		Arguments *ExpressionList
	}

	// ExpressionList is an ordered sequence of nodes, used for call
	// arguments and column declaration lists. Order is preserved as
	// written.
	ExpressionList struct {
		Items []Node
	}

	// NameTypePair is a `name type` declaration, e.g. `URL String`.
	NameTypePair struct {
		Name string
		Type Node
	}

	// ColumnDeclaration is one column spec inside CREATE TABLE.
	//
	// At least one of Type and Default is always present: the grammar
	// rejects a bare name. DefaultSpecifier is the upper-cased modifier
	// keyword (DEFAULT, MATERIALIZED or ALIAS) and is set exactly when
	// Default is set.
	ColumnDeclaration struct {
		Name             string
		Type             Node
		DefaultSpecifier string
		Default          Node
		Codec            Node
		Comment          Node
	}

	// SelectRaw carries the verbatim text of a SELECT body. The SELECT
	// grammar itself is outside this parser; the span is preserved so
	// statements re-serialize losslessly.
	SelectRaw struct {
		Text string
	}
)

// Clone returns a copy of the identifier.
func (n *Identifier) Clone() Node { c := *n; return &c }

// Children returns nil; identifiers are leaves.
func (n *Identifier) Children() []Node { return nil }

// Format writes the identifier, quoting segments that are not bare words.
func (n *Identifier) Format(b *strings.Builder, _ FormatSettings, _ Frame) {
	b.WriteString(backQuoteIfNeed(n.Name))
}

// Clone returns a copy of the literal.
func (n *Literal) Clone() Node { c := *n; return &c }

// Children returns nil; literals are leaves.
func (n *Literal) Children() []Node { return nil }

// Format writes the literal's source text.
func (n *Literal) Format(b *strings.Builder, _ FormatSettings, _ Frame) {
	b.WriteString(n.Text)
}

// Clone deep-copies the function and its argument list.
func (n *Function) Clone() Node {
	c := &Function{Name: n.Name}
	if n.Arguments != nil {
		c.Arguments = n.Arguments.Clone().(*ExpressionList)
	}
	return c
}

// Children returns the argument list when present.
func (n *Function) Children() []Node {
	if n.Arguments == nil {
		return nil
	}
	return []Node{n.Arguments}
}

// Format writes name or name(args).
func (n *Function) Format(b *strings.Builder, s FormatSettings, f Frame) {
	b.WriteString(n.Name)
	if n.Arguments != nil {
		b.WriteByte('(')
		n.Arguments.Format(b, s, f)
		b.WriteByte(')')
	}
}

// Clone deep-copies every item.
func (n *ExpressionList) Clone() Node {
	c := &ExpressionList{Items: make([]Node, len(n.Items))}
	for i, item := range n.Items {
		c.Items[i] = item.Clone()
	}
	return c
}

// Children returns the items in order.
func (n *ExpressionList) Children() []Node {
	return append([]Node(nil), n.Items...)
}

// Format writes the items comma-separated on one line.
func (n *ExpressionList) Format(b *strings.Builder, s FormatSettings, f Frame) {
	for i, item := range n.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		item.Format(b, s, f)
	}
}

// formatMultiline writes one item per line at the frame's indent.
func (n *ExpressionList) formatMultiline(b *strings.Builder, s FormatSettings, f Frame) {
	for i, item := range n.Items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
		writeIndent(b, f)
		item.Format(b, s, f)
	}
}

// Clone deep-copies the pair, including the owned type node.
func (n *NameTypePair) Clone() Node {
	return &NameTypePair{Name: n.Name, Type: cloneNode(n.Type)}
}

// Children returns the type node.
func (n *NameTypePair) Children() []Node {
	return []Node{n.Type}
}

// Format writes `name type`.
func (n *NameTypePair) Format(b *strings.Builder, s FormatSettings, f Frame) {
	b.WriteString(backQuoteIfNeed(n.Name))
	b.WriteByte(' ')
	n.Type.Format(b, s, f)
}

// Clone deep-copies the declaration. The children are rebuilt from the
// copied fields, never aliased from the source.
func (n *ColumnDeclaration) Clone() Node {
	return &ColumnDeclaration{
		Name:             n.Name,
		Type:             cloneNode(n.Type),
		DefaultSpecifier: n.DefaultSpecifier,
		Default:          cloneNode(n.Default),
		Codec:            cloneNode(n.Codec),
		Comment:          cloneNode(n.Comment),
	}
}

// Children returns the present optional children in the fixed order
// type, default expression, codec, comment.
func (n *ColumnDeclaration) Children() []Node {
	var children []Node
	for _, c := range []Node{n.Type, n.Default, n.Codec, n.Comment} {
		if c != nil {
			children = append(children, c)
		}
	}
	return children
}

// Format writes the declaration: name, then each present part preceded by a
// single space, in the order type, default, comment, codec.
func (n *ColumnDeclaration) Format(b *strings.Builder, s FormatSettings, f Frame) {
	b.WriteString(backQuoteIfNeed(n.Name))

	if n.Type != nil {
		b.WriteByte(' ')
		n.Type.Format(b, s, f)
	}

	if n.Default != nil {
		b.WriteByte(' ')
		writeKeyword(b, s, n.DefaultSpecifier)
		b.WriteByte(' ')
		n.Default.Format(b, s, f)
	}

	if n.Comment != nil {
		b.WriteByte(' ')
		writeKeyword(b, s, "COMMENT")
		b.WriteByte(' ')
		n.Comment.Format(b, s, f)
	}

	if n.Codec != nil {
		b.WriteByte(' ')
		n.Codec.Format(b, s, f)
	}
}

// Clone returns a copy of the raw SELECT body.
func (n *SelectRaw) Clone() Node { c := *n; return &c }

// Children returns nil; the body is opaque.
func (n *SelectRaw) Children() []Node { return nil }

// Format writes the verbatim SELECT text.
func (n *SelectRaw) Format(b *strings.Builder, _ FormatSettings, _ Frame) {
	b.WriteString(n.Text)
}
