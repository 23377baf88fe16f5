package ast

import "strings"

// CreateQuery is the root node for CREATE/ATTACH TABLE, DATABASE and VIEW
// statements.
//
// A database statement has Table empty. A view has IsView set and carries
// its body in Select. Table statements hold exactly one of: a column list
// (Columns), a source table (AsTable), or an engine plus SELECT body.
type CreateQuery struct {
	Attach         bool
	IfNotExists    bool
	IsView         bool
	IsMaterialized bool
	IsPopulate     bool

	Database string
	Table    string

	AsDatabase string
	AsTable    string

	Columns *ExpressionList
	Engine  Node
	Select  Node
}

// Clone deep-copies the statement and every owned child.
func (n *CreateQuery) Clone() Node {
	c := *n
	c.Columns = nil
	if n.Columns != nil {
		c.Columns = n.Columns.Clone().(*ExpressionList)
	}
	c.Engine = cloneNode(n.Engine)
	c.Select = cloneNode(n.Select)
	return &c
}

// Children returns the present owned children in the order columns,
// engine, select.
func (n *CreateQuery) Children() []Node {
	var children []Node
	if n.Columns != nil {
		children = append(children, n.Columns)
	}
	if n.Engine != nil {
		children = append(children, n.Engine)
	}
	if n.Select != nil {
		children = append(children, n.Select)
	}
	return children
}

// Format re-serializes the statement. With OneLine unset, column lists are
// written one per line and the engine clause moves to its own line.
func (n *CreateQuery) Format(b *strings.Builder, s FormatSettings, f Frame) {
	if n.Attach {
		writeKeyword(b, s, "ATTACH")
	} else {
		writeKeyword(b, s, "CREATE")
	}
	b.WriteByte(' ')

	switch {
	case n.Table == "":
		n.formatDatabase(b, s, f)
	case n.IsView:
		n.formatView(b, s, f)
	default:
		n.formatTable(b, s, f)
	}
}

func (n *CreateQuery) formatDatabase(b *strings.Builder, s FormatSettings, f Frame) {
	writeKeyword(b, s, "DATABASE")
	b.WriteByte(' ')
	if n.IfNotExists {
		writeKeyword(b, s, "IF NOT EXISTS")
		b.WriteByte(' ')
	}
	b.WriteString(backQuoteIfNeed(n.Database))
	n.formatEngine(b, s, f)
}

func (n *CreateQuery) formatView(b *strings.Builder, s FormatSettings, f Frame) {
	if n.IsMaterialized {
		writeKeyword(b, s, "MATERIALIZED")
		b.WriteByte(' ')
	}
	writeKeyword(b, s, "VIEW")
	b.WriteByte(' ')
	if n.IfNotExists {
		writeKeyword(b, s, "IF NOT EXISTS")
		b.WriteByte(' ')
	}
	writeQualified(b, n.Database, n.Table)
	n.formatEngine(b, s, f)
	if n.IsPopulate {
		b.WriteByte(' ')
		writeKeyword(b, s, "POPULATE")
	}
	b.WriteByte(' ')
	writeKeyword(b, s, "AS")
	b.WriteByte(' ')
	n.Select.Format(b, s, f)
}

func (n *CreateQuery) formatTable(b *strings.Builder, s FormatSettings, f Frame) {
	writeKeyword(b, s, "TABLE")
	b.WriteByte(' ')
	if n.IfNotExists {
		writeKeyword(b, s, "IF NOT EXISTS")
		b.WriteByte(' ')
	}
	writeQualified(b, n.Database, n.Table)

	switch {
	case n.Columns != nil:
		if s.OneLine {
			b.WriteString(" (")
			n.Columns.Format(b, s, f)
			b.WriteByte(')')
		} else {
			b.WriteString("\n(")
			n.Columns.formatMultiline(b, s, Frame{Indent: f.Indent + 1})
			b.WriteByte('\n')
			writeIndent(b, f)
			b.WriteByte(')')
		}
		n.formatEngine(b, s, f)

	case n.AsTable != "":
		b.WriteByte(' ')
		writeKeyword(b, s, "AS")
		b.WriteByte(' ')
		writeQualified(b, n.AsDatabase, n.AsTable)
		n.formatEngine(b, s, f)

	default:
		b.WriteByte(' ')
		writeKeyword(b, s, "AS")
		n.formatEngine(b, s, f)
		b.WriteByte(' ')
		n.Select.Format(b, s, f)
	}
}

func (n *CreateQuery) formatEngine(b *strings.Builder, s FormatSettings, f Frame) {
	if n.Engine == nil {
		return
	}
	if s.OneLine || n.Columns == nil {
		b.WriteByte(' ')
	} else {
		b.WriteByte('\n')
		writeIndent(b, f)
	}
	writeKeyword(b, s, "ENGINE")
	b.WriteString(" = ")
	n.Engine.Format(b, s, f)
}

func writeQualified(b *strings.Builder, database, name string) {
	if database != "" {
		b.WriteString(backQuoteIfNeed(database))
		b.WriteByte('.')
	}
	b.WriteString(backQuoteIfNeed(name))
}
