package statement

import (
	"github.com/nikola-chen/sqlparser/identifier"
	"github.com/nikola-chen/sqlparser/segment"
)

// InsertStatement is INSERT INTO table [(columns)] VALUES ... or
// INSERT INTO table SET ....
type InsertStatement struct {
	Table         *segment.TableSegment
	InsertColumns *segment.InsertColumnsSegment
	Values        []*segment.InsertValuesSegment
	SetAssignment *segment.SetAssignmentSegment
	Parameters    int
}

func (s *InsertStatement) Type() Type { return Insert }

func (s *InsertStatement) Tables() []*segment.TableSegment {
	return []*segment.TableSegment{s.Table}
}

// Columns returns the explicit column list, if one was written.
func (s *InsertStatement) Columns() (*segment.InsertColumnsSegment, bool) {
	return s.InsertColumns, s.InsertColumns != nil
}

// Assignment returns the SET clause of an INSERT ... SET.
func (s *InsertStatement) Assignment() (*segment.SetAssignmentSegment, bool) {
	return s.SetAssignment, s.SetAssignment != nil
}

func (s *InsertStatement) ParameterCount() int { return s.Parameters }

func (s *InsertStatement) Identifiers() []identifier.Value {
	var c collector
	c.table(s.Table)
	if s.InsertColumns != nil {
		for _, col := range s.InsertColumns.Columns {
			c.column(col)
		}
	}
	for _, row := range s.Values {
		for _, v := range row.Values {
			c.expr(v)
		}
	}
	c.assignments(s.SetAssignment)
	return c.values()
}
