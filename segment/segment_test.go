package segment

import (
	"testing"

	"github.com/nikola-chen/sqlparser/identifier"
)

func TestQualifiedName(t *testing.T) {
	tests := []struct {
		name string
		seg  interface{ QualifiedName() string }
		want string
	}{
		{
			name: "bare table",
			seg:  &TableSegment{Identifier: identifier.New("t_order")},
			want: "t_order",
		},
		{
			name: "quoted owner and table",
			seg: &TableSegment{
				Identifier: identifier.New("[t_order]"),
				Owner:      &OwnerSegment{Identifier: identifier.New("[dbo]")},
			},
			want: "[dbo].[t_order]",
		},
		{
			name: "alias is not part of the name",
			seg: &TableSegment{
				Identifier: identifier.New("t_order"),
				Alias:      &AliasSegment{Identifier: identifier.New("o")},
			},
			want: "t_order",
		},
		{
			name: "column with owner",
			seg: &ColumnSegment{
				Identifier: identifier.New("`status`"),
				Owner:      &OwnerSegment{Identifier: identifier.New("o")},
			},
			want: "o.`status`",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.QualifiedName(); got != tt.want {
				t.Fatalf("QualifiedName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	var s Segment = &ColumnSegment{Span: Span{Start: 3, Stop: 9}}
	if s.StartIndex() != 3 || s.StopIndex() != 9 {
		t.Fatalf("span = [%d, %d], want [3, 9]", s.StartIndex(), s.StopIndex())
	}
}

func TestLiteralKindString(t *testing.T) {
	want := map[LiteralKind]string{
		StringLiteral:   "string",
		NumberLiteral:   "number",
		NullLiteral:     "null",
		BooleanLiteral:  "boolean",
		LiteralKind(42): "unknown",
	}
	for k, s := range want {
		if k.String() != s {
			t.Fatalf("%d.String() = %q, want %q", int(k), k.String(), s)
		}
	}
}
