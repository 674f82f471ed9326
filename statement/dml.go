package statement

import (
	"github.com/nikola-chen/sqlparser/identifier"
	"github.com/nikola-chen/sqlparser/segment"
)

// UpdateStatement is UPDATE table SET ... [WHERE ...].
type UpdateStatement struct {
	Table         *segment.TableSegment
	SetAssignment *segment.SetAssignmentSegment
	Where         *segment.WhereSegment
	Parameters    int
}

func (s *UpdateStatement) Type() Type { return Update }

func (s *UpdateStatement) Tables() []*segment.TableSegment {
	return []*segment.TableSegment{s.Table}
}

// WhereClause returns the WHERE clause, if one was written.
func (s *UpdateStatement) WhereClause() (*segment.WhereSegment, bool) {
	return s.Where, s.Where != nil
}

func (s *UpdateStatement) ParameterCount() int { return s.Parameters }

func (s *UpdateStatement) Identifiers() []identifier.Value {
	var c collector
	c.table(s.Table)
	c.assignments(s.SetAssignment)
	c.where(s.Where)
	return c.values()
}

// DeleteStatement is DELETE FROM table [WHERE ...].
type DeleteStatement struct {
	Table      *segment.TableSegment
	Where      *segment.WhereSegment
	Parameters int
}

func (s *DeleteStatement) Type() Type { return Delete }

func (s *DeleteStatement) Tables() []*segment.TableSegment {
	return []*segment.TableSegment{s.Table}
}

// WhereClause returns the WHERE clause, if one was written.
func (s *DeleteStatement) WhereClause() (*segment.WhereSegment, bool) {
	return s.Where, s.Where != nil
}

func (s *DeleteStatement) ParameterCount() int { return s.Parameters }

func (s *DeleteStatement) Identifiers() []identifier.Value {
	var c collector
	c.table(s.Table)
	c.where(s.Where)
	return c.values()
}

// SelectStatement is SELECT projections FROM table [WHERE ...].
type SelectStatement struct {
	Projections *segment.ProjectionsSegment
	Table       *segment.TableSegment
	Where       *segment.WhereSegment
	Parameters  int
}

func (s *SelectStatement) Type() Type { return Select }

func (s *SelectStatement) Tables() []*segment.TableSegment {
	return []*segment.TableSegment{s.Table}
}

// WhereClause returns the WHERE clause, if one was written.
func (s *SelectStatement) WhereClause() (*segment.WhereSegment, bool) {
	return s.Where, s.Where != nil
}

func (s *SelectStatement) ParameterCount() int { return s.Parameters }

func (s *SelectStatement) Identifiers() []identifier.Value {
	var c collector
	if s.Projections != nil {
		for _, p := range s.Projections.Columns {
			c.column(p.Column)
			if p.Alias != nil {
				c.add(p.Alias.Start, p.Alias.Identifier)
			}
		}
	}
	c.table(s.Table)
	c.where(s.Where)
	return c.values()
}
