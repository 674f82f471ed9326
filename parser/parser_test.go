package parser_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nikola-chen/sqlparser/dialect"
	"github.com/nikola-chen/sqlparser/identifier"
	"github.com/nikola-chen/sqlparser/parser"
	"github.com/nikola-chen/sqlparser/segment"
	"github.com/nikola-chen/sqlparser/statement"
)

var identEqual = cmp.Comparer(identifier.Equal)

func mustParse(t *testing.T, dialectName, sql string) statement.Statement {
	t.Helper()
	stmt, err := parser.Parse(dialect.MustGet(dialectName), sql)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", sql, err)
	}
	return stmt
}

func TestParseInsertValues(t *testing.T) {
	got := mustParse(t, "mysql", "INSERT INTO `t_order` (`order_id`, user_id) VALUES (?, 'init')")

	want := &statement.InsertStatement{
		Table: &segment.TableSegment{
			Span:       segment.Span{Start: 12, Stop: 20},
			Identifier: identifier.New("`t_order`"),
		},
		InsertColumns: &segment.InsertColumnsSegment{
			Span: segment.Span{Start: 22, Stop: 42},
			Columns: []*segment.ColumnSegment{
				{Span: segment.Span{Start: 23, Stop: 32}, Identifier: identifier.New("`order_id`")},
				{Span: segment.Span{Start: 35, Stop: 41}, Identifier: identifier.New("user_id")},
			},
		},
		Values: []*segment.InsertValuesSegment{
			{
				Span: segment.Span{Start: 51, Stop: 61},
				Values: []segment.ExpressionSegment{
					&segment.ParameterMarkerExpressionSegment{Span: segment.Span{Start: 52, Stop: 52}, Index: 0, Text: "?"},
					&segment.LiteralExpressionSegment{Span: segment.Span{Start: 55, Stop: 60}, Kind: segment.StringLiteral, Text: "'init'", Value: "init"},
				},
			},
		},
		Parameters: 1,
	}
	if diff := cmp.Diff(want, got, identEqual); diff != "" {
		t.Fatalf("got [+], want [-]: %s", diff)
	}
}

func TestParseInsertSet(t *testing.T) {
	got := mustParse(t, "mysql", "insert into t_order set order_id = ?, status = 'init';").(*statement.InsertStatement)

	if _, ok := got.Columns(); ok {
		t.Fatalf("expected no column list")
	}
	if len(got.Values) != 0 {
		t.Fatalf("expected no values, got %d rows", len(got.Values))
	}
	set, ok := got.Assignment()
	if !ok {
		t.Fatalf("expected set clause")
	}
	if len(set.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(set.Assignments))
	}
	if name := set.Assignments[1].Column.Identifier.Value(); name != "status" {
		t.Fatalf("unexpected column %q", name)
	}
	if got.ParameterCount() != 1 {
		t.Fatalf("expected 1 parameter, got %d", got.ParameterCount())
	}
}

func TestParseMultiRowInsertNumbersParameters(t *testing.T) {
	got := mustParse(t, "postgresql", `INSERT INTO "T" ("A", "B") VALUES ($1, $2), ($3, NULL)`).(*statement.InsertStatement)

	if len(got.Values) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got.Values))
	}
	var indexes []int
	for _, row := range got.Values {
		for _, v := range row.Values {
			if p, ok := v.(*segment.ParameterMarkerExpressionSegment); ok {
				indexes = append(indexes, p.Index)
			}
		}
	}
	if diff := cmp.Diff([]int{0, 1, 2}, indexes); diff != "" {
		t.Fatalf("got [+], want [-]: %s", diff)
	}
	null, ok := got.Values[1].Values[1].(*segment.LiteralExpressionSegment)
	if !ok || null.Kind != segment.NullLiteral || null.Value != nil {
		t.Fatalf("expected NULL literal, got %#v", got.Values[1].Values[1])
	}
}

func TestParseSignedNumberKeepsSourceText(t *testing.T) {
	got := mustParse(t, "mysql", "UPDATE t SET b = - 1").(*statement.UpdateStatement)

	want := &segment.LiteralExpressionSegment{
		Span:  segment.Span{Start: 17, Stop: 19},
		Kind:  segment.NumberLiteral,
		Text:  "- 1",
		Value: int64(-1),
	}
	if diff := cmp.Diff(want, got.SetAssignment.Assignments[0].Value); diff != "" {
		t.Fatalf("got [+], want [-]: %s", diff)
	}
}

func TestParseUpdate(t *testing.T) {
	got := mustParse(t, "sqlserver", "UPDATE [dbo].[t_order] AS o SET o.[status] = 'done', amount = -1.5 WHERE [order_id] = @p1 AND user_id <> 3").(*statement.UpdateStatement)

	if got.Table.Owner == nil || got.Table.Owner.Identifier.Value() != "dbo" {
		t.Fatalf("expected owner dbo, got %#v", got.Table.Owner)
	}
	if got.Table.Identifier != identifier.NewQuoted("t_order", identifier.Bracket) {
		t.Fatalf("unexpected table %v", got.Table.Identifier)
	}
	if got.Table.Alias == nil || got.Table.Alias.Identifier.Value() != "o" {
		t.Fatalf("expected alias o")
	}
	col := got.SetAssignment.Assignments[0].Column
	if col.Owner == nil || col.Owner.Identifier.Value() != "o" || col.Identifier.QuoteCharacter() != identifier.Bracket {
		t.Fatalf("unexpected column %s", col.QualifiedName())
	}
	amount := got.SetAssignment.Assignments[1].Value.(*segment.LiteralExpressionSegment)
	if amount.Value != -1.5 {
		t.Fatalf("expected -1.5, got %#v", amount.Value)
	}
	where, ok := got.WhereClause()
	if !ok || len(where.Predicates) != 2 {
		t.Fatalf("expected 2 predicates")
	}
	if where.Predicates[1].Operator != "<>" {
		t.Fatalf("unexpected operator %q", where.Predicates[1].Operator)
	}
	if got.ParameterCount() != 1 {
		t.Fatalf("expected 1 parameter, got %d", got.ParameterCount())
	}
}

func TestParseDelete(t *testing.T) {
	got := mustParse(t, "oracle", `DELETE FROM "Orders" WHERE id = :1`).(*statement.DeleteStatement)
	if got.Table.Identifier != identifier.NewQuoted("Orders", identifier.DoubleQuote) {
		t.Fatalf("unexpected table %v", got.Table.Identifier)
	}
	if _, ok := got.WhereClause(); !ok {
		t.Fatalf("expected where clause")
	}

	noWhere := mustParse(t, "oracle", `DELETE FROM t`).(*statement.DeleteStatement)
	if _, ok := noWhere.WhereClause(); ok {
		t.Fatalf("expected no where clause")
	}
}

func TestParseSelect(t *testing.T) {
	got := mustParse(t, "h2", "SELECT `u`.`name` AS \"n\", age FROM users u WHERE active = TRUE").(*statement.SelectStatement)

	want := []identifier.Value{
		identifier.New("`u`"),
		identifier.New("`name`"),
		identifier.New(`"n"`),
		identifier.New("age"),
		identifier.New("users"),
		identifier.New("u"),
		identifier.New("active"),
	}
	if diff := cmp.Diff(want, got.Identifiers(), identEqual); diff != "" {
		t.Fatalf("got [+], want [-]: %s", diff)
	}

	star := mustParse(t, "h2", "select * from users").(*statement.SelectStatement)
	if !star.Projections.Star || len(star.Projections.Columns) != 0 {
		t.Fatalf("expected star projection")
	}
}

func TestParseKeywordsOnlyAsQuotedNames(t *testing.T) {
	got := mustParse(t, "postgresql", `SELECT "select" FROM "from"`).(*statement.SelectStatement)
	if got.Table.Identifier.Value() != "from" {
		t.Fatalf("unexpected table %v", got.Table.Identifier)
	}

	if _, err := parser.Parse(dialect.MustGet("postgresql"), `SELECT select FROM t`); !errors.Is(err, parser.ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		sql     string
		want    error
	}{
		{"empty", "mysql", "", parser.ErrEmptySQL},
		{"blank", "mysql", "  \n\t", parser.ErrEmptySQL},
		{"unsupported statement", "mysql", "CREATE TABLE t (id INT)", parser.ErrSyntax},
		{"foreign delimiter", "mysql", "SELECT [id] FROM t", parser.ErrSyntax},
		{"missing values", "mysql", "INSERT INTO t (a)", parser.ErrSyntax},
		{"trailing garbage", "postgresql", `DELETE FROM t WHERE a = 1 b`, parser.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(dialect.MustGet(tt.dialect), tt.sql)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) err = %v, want %v", tt.sql, err, tt.want)
			}
		})
	}
}

func TestParserIsShared(t *testing.T) {
	d := dialect.MustGet("mysql")
	if parser.New(d) != parser.New(d) {
		t.Fatalf("expected cached parser")
	}
}

func FuzzParse(f *testing.F) {
	for _, s := range []string{
		"SELECT * FROM t",
		"INSERT INTO `t` (a) VALUES (?)",
		"UPDATE t SET a = 1 WHERE b = 'x'",
		"DELETE FROM t",
	} {
		f.Add(s)
	}
	p := parser.New(dialect.MustGet("mysql"))
	f.Fuzz(func(t *testing.T, sql string) {
		stmt, err := p.Parse(sql)
		if err != nil {
			return
		}
		for _, id := range stmt.Identifiers() {
			if id.IsQuoted() && id.QuoteCharacter() != identifier.BackQuote {
				t.Fatalf("mysql produced %v identifier", id.QuoteCharacter())
			}
		}
	})
}
