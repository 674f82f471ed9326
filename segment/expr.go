package segment

// ExpressionSegment is a value position: a literal, a parameter marker or a
// column reference.
type ExpressionSegment interface {
	Segment
	expression()
}

// LiteralKind tells how a literal was written.
type LiteralKind int

const (
	StringLiteral LiteralKind = iota
	NumberLiteral
	NullLiteral
	BooleanLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case StringLiteral:
		return "string"
	case NumberLiteral:
		return "number"
	case NullLiteral:
		return "null"
	case BooleanLiteral:
		return "boolean"
	default:
		return "unknown"
	}
}

// LiteralExpressionSegment is a constant. Text is the literal as written;
// Value is its decoded form (string, int64, float64, bool or nil).
type LiteralExpressionSegment struct {
	Span
	Kind  LiteralKind
	Text  string
	Value any
}

// ParameterMarkerExpressionSegment is a bind parameter. Index counts
// markers in statement order, starting at 0.
type ParameterMarkerExpressionSegment struct {
	Span
	Index int
	Text  string
}

func (*LiteralExpressionSegment) expression()         {}
func (*ParameterMarkerExpressionSegment) expression() {}
func (*ColumnSegment) expression()                    {}
