package builder

import (
	"github.com/nikola-chen/sqlparser/identifier"
	"github.com/nikola-chen/sqlparser/segment"
)

// ident writes a name. Without a target dialect the name is written as it
// was parsed; with one, quoted names are unescaped from their source
// delimiters and quoted again for the target.
func (b *sqlBuilder) ident(v identifier.Value) {
	switch {
	case b.d == nil:
		b.buf.WriteString(v.String())
	case v.IsQuoted() || b.quoteAll:
		b.buf.WriteString(b.d.QuoteIdent(v.Unescaped()))
	default:
		b.buf.WriteString(v.Value())
	}
}

func (b *sqlBuilder) owner(o *segment.OwnerSegment) {
	if o == nil {
		return
	}
	b.ident(o.Identifier)
	b.buf.WriteByte('.')
}

func (b *sqlBuilder) table(t *segment.TableSegment) {
	b.owner(t.Owner)
	b.ident(t.Identifier)
	if t.Alias != nil {
		b.buf.WriteByte(' ')
		b.ident(t.Alias.Identifier)
	}
}

func (b *sqlBuilder) column(c *segment.ColumnSegment) {
	b.owner(c.Owner)
	b.ident(c.Identifier)
}

func (b *sqlBuilder) expr(e segment.ExpressionSegment) {
	switch x := e.(type) {
	case *segment.ColumnSegment:
		b.column(x)
	case *segment.ParameterMarkerExpressionSegment:
		if b.placeholders && b.d != nil {
			b.buf.WriteString(b.d.Placeholder(x.Index + 1))
			return
		}
		b.buf.WriteString(x.Text)
	case *segment.LiteralExpressionSegment:
		b.buf.WriteString(x.Text)
	}
}

func (b *sqlBuilder) assignments(s *segment.SetAssignmentSegment) {
	b.buf.WriteString(" SET ")
	for i, a := range s.Assignments {
		if i > 0 {
			b.buf.WriteString(", ")
		}
		b.column(a.Column)
		b.buf.WriteString(" = ")
		b.expr(a.Value)
	}
}

func (b *sqlBuilder) where(w *segment.WhereSegment) {
	if w == nil || len(w.Predicates) == 0 {
		return
	}
	b.buf.WriteString(" WHERE ")
	for i, p := range w.Predicates {
		if i > 0 {
			b.buf.WriteString(" AND ")
		}
		b.column(p.Column)
		b.buf.WriteByte(' ')
		b.buf.WriteString(p.Operator)
		b.buf.WriteByte(' ')
		b.expr(p.Right)
	}
}
