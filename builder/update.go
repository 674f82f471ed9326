package builder

import (
	"errors"

	"github.com/nikola-chen/sqlparser/statement"
)

func (b *sqlBuilder) update(s *statement.UpdateStatement) (string, error) {
	if s.Table == nil {
		return "", ErrMissingTable
	}
	if s.SetAssignment == nil || len(s.SetAssignment.Assignments) == 0 {
		return "", errors.New("sqlparser: missing set clause for update")
	}
	b.buf.WriteString("UPDATE ")
	b.table(s.Table)
	b.assignments(s.SetAssignment)
	b.where(s.Where)
	return b.buf.String(), nil
}
