package builder

import (
	"errors"

	"github.com/nikola-chen/sqlparser/statement"
)

func (b *sqlBuilder) selectSQL(s *statement.SelectStatement) (string, error) {
	if s.Table == nil {
		return "", ErrMissingTable
	}
	p := s.Projections
	if p == nil || (!p.Star && len(p.Columns) == 0) {
		return "", errors.New("sqlparser: missing projections for select")
	}

	b.buf.WriteString("SELECT ")
	if p.Star {
		b.buf.WriteString("*")
	}
	for i, c := range p.Columns {
		if i > 0 {
			b.buf.WriteString(", ")
		}
		b.column(c.Column)
		if c.Alias != nil {
			b.buf.WriteString(" AS ")
			b.ident(c.Alias.Identifier)
		}
	}
	b.buf.WriteString(" FROM ")
	b.table(s.Table)
	b.where(s.Where)
	return b.buf.String(), nil
}
