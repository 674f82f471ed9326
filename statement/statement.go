// Package statement defines the parsed forms of the supported SQL
// statements. Statements are built once by the parser and are read-only
// afterwards, so a cached statement may be shared between goroutines.
package statement

import (
	"sort"

	"github.com/nikola-chen/sqlparser/identifier"
	"github.com/nikola-chen/sqlparser/segment"
)

// Type is the kind of a statement.
type Type int

const (
	Insert Type = iota
	Update
	Delete
	Select
)

func (t Type) String() string {
	switch t {
	case Insert:
		return "INSERT"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	case Select:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// Statement is a parsed SQL statement.
type Statement interface {
	Type() Type
	// Tables returns the tables the statement references.
	Tables() []*segment.TableSegment
	// Identifiers returns every name in the statement, in source order.
	Identifiers() []identifier.Value
	// ParameterCount returns the number of bind parameters.
	ParameterCount() int
}

// collector gathers identifiers with their offsets so they can be returned
// in source order regardless of the walk order. An owner shares its start
// with the qualified name and is added first; the sort is stable.
type collector struct {
	items []collected
}

type collected struct {
	start int
	value identifier.Value
}

func (c *collector) add(start int, v identifier.Value) {
	c.items = append(c.items, collected{start: start, value: v})
}

func (c *collector) table(t *segment.TableSegment) {
	if t == nil {
		return
	}
	if t.Owner != nil {
		c.add(t.Owner.Start, t.Owner.Identifier)
	}
	c.add(t.Start, t.Identifier)
	if t.Alias != nil {
		c.add(t.Alias.Start, t.Alias.Identifier)
	}
}

func (c *collector) column(col *segment.ColumnSegment) {
	if col == nil {
		return
	}
	if col.Owner != nil {
		c.add(col.Owner.Start, col.Owner.Identifier)
	}
	c.add(col.Start, col.Identifier)
}

func (c *collector) expr(e segment.ExpressionSegment) {
	if col, ok := e.(*segment.ColumnSegment); ok {
		c.column(col)
	}
}

func (c *collector) assignments(s *segment.SetAssignmentSegment) {
	if s == nil {
		return
	}
	for _, a := range s.Assignments {
		c.column(a.Column)
		c.expr(a.Value)
	}
}

func (c *collector) where(w *segment.WhereSegment) {
	if w == nil {
		return
	}
	for _, p := range w.Predicates {
		c.column(p.Column)
		c.expr(p.Right)
	}
}

func (c *collector) values() []identifier.Value {
	sort.SliceStable(c.items, func(i, j int) bool { return c.items[i].start < c.items[j].start })
	out := make([]identifier.Value, len(c.items))
	for i, it := range c.items {
		out[i] = it.value
	}
	return out
}
