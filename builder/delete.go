package builder

import "github.com/nikola-chen/sqlparser/statement"

func (b *sqlBuilder) delete(s *statement.DeleteStatement) (string, error) {
	if s.Table == nil {
		return "", ErrMissingTable
	}
	b.buf.WriteString("DELETE FROM ")
	b.table(s.Table)
	b.where(s.Where)
	return b.buf.String(), nil
}
