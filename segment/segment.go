// Package segment holds the pieces of a parsed statement. Every segment
// records the byte range it was parsed from; StopIndex is inclusive.
package segment

import "github.com/nikola-chen/sqlparser/identifier"

// Segment is a piece of SQL text.
type Segment interface {
	StartIndex() int
	StopIndex() int
}

// Span is the byte range of a segment.
type Span struct {
	Start int
	Stop  int
}

func (s Span) StartIndex() int { return s.Start }

func (s Span) StopIndex() int { return s.Stop }

// OwnerSegment is the qualifier in owner.name.
type OwnerSegment struct {
	Span
	Identifier identifier.Value
}

// AliasSegment is the name after an optional AS.
type AliasSegment struct {
	Span
	Identifier identifier.Value
}

// TableSegment names a table.
type TableSegment struct {
	Span
	Identifier identifier.Value
	Owner      *OwnerSegment
	Alias      *AliasSegment
}

// ColumnSegment names a column. It is also an expression.
type ColumnSegment struct {
	Span
	Identifier identifier.Value
	Owner      *OwnerSegment
}

// QualifiedName returns the column as written, owner included.
func (c *ColumnSegment) QualifiedName() string {
	if c.Owner == nil {
		return c.Identifier.String()
	}
	return c.Owner.Identifier.String() + "." + c.Identifier.String()
}

// QualifiedName returns the table as written, owner included.
func (t *TableSegment) QualifiedName() string {
	if t.Owner == nil {
		return t.Identifier.String()
	}
	return t.Owner.Identifier.String() + "." + t.Identifier.String()
}
