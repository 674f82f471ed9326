package segment

// InsertColumnsSegment is the parenthesized column list of an INSERT.
type InsertColumnsSegment struct {
	Span
	Columns []*ColumnSegment
}

// InsertValuesSegment is one row of an INSERT ... VALUES.
type InsertValuesSegment struct {
	Span
	Values []ExpressionSegment
}

// AssignmentSegment is column = value.
type AssignmentSegment struct {
	Span
	Column *ColumnSegment
	Value  ExpressionSegment
}

// SetAssignmentSegment is the SET clause of an UPDATE or an INSERT ... SET.
type SetAssignmentSegment struct {
	Span
	Assignments []*AssignmentSegment
}

// PredicateSegment is column <op> value.
type PredicateSegment struct {
	Span
	Column   *ColumnSegment
	Operator string
	Right    ExpressionSegment
}

// WhereSegment is a conjunction of predicates.
type WhereSegment struct {
	Span
	Predicates []*PredicateSegment
}

// ColumnProjectionSegment is one entry of a select list.
type ColumnProjectionSegment struct {
	Span
	Column *ColumnSegment
	Alias  *AliasSegment
}

// ProjectionsSegment is the select list. Star is set for SELECT *.
type ProjectionsSegment struct {
	Span
	Star    bool
	Columns []*ColumnProjectionSegment
}
