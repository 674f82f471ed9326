package builder

import (
	"errors"

	"github.com/nikola-chen/sqlparser/statement"
)

func (b *sqlBuilder) insert(s *statement.InsertStatement) (string, error) {
	if s.Table == nil {
		return "", ErrMissingTable
	}
	set, hasSet := s.Assignment()
	if len(s.Values) == 0 && !hasSet {
		return "", errors.New("sqlparser: missing values for insert")
	}

	b.buf.WriteString("INSERT INTO ")
	b.table(s.Table)

	if cols, ok := s.Columns(); ok {
		b.buf.WriteString(" (")
		for i, c := range cols.Columns {
			if i > 0 {
				b.buf.WriteString(", ")
			}
			b.column(c)
		}
		b.buf.WriteString(")")
	}

	if hasSet {
		b.assignments(set)
		return b.buf.String(), nil
	}

	b.buf.WriteString(" VALUES ")
	for r, row := range s.Values {
		if cols, ok := s.Columns(); ok && len(row.Values) != len(cols.Columns) {
			return "", errors.New("sqlparser: insert values length mismatch columns")
		}
		if r > 0 {
			b.buf.WriteString(", ")
		}
		b.buf.WriteString("(")
		for i, v := range row.Values {
			if i > 0 {
				b.buf.WriteString(", ")
			}
			b.expr(v)
		}
		b.buf.WriteString(")")
	}
	return b.buf.String(), nil
}
