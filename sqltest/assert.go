package sqltest

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/nikola-chen/sqlparser/identifier"
	"github.com/nikola-chen/sqlparser/segment"
	"github.com/nikola-chen/sqlparser/statement"
)

type identifierView struct {
	Name  string
	Quote string
}

func fail(r Reporter, ctx AssertContext, format string, args ...any) {
	r.Helper()
	r.Errorf("%s", ctx.Text(fmt.Sprintf(format, args...)))
}

// AssertIdentifier checks a name, its quote style and, when the fixture
// gives them, its start and stop indexes.
func AssertIdentifier(r Reporter, ctx AssertContext, what string, actual identifier.Value, span segment.Span, expected ExpectedIdentifier) {
	r.Helper()
	want := identifierView{Name: expected.Name, Quote: expected.Quote.String()}
	got := identifierView{Name: actual.Value(), Quote: actual.QuoteCharacter().String()}
	if diff := cmp.Diff(want, got); diff != "" {
		fail(r, ctx, "%s identifier assertion error: got [+], want [-]\n%s", what, diff)
	}
	if expected.StartIndex != nil && *expected.StartIndex >= 0 && *expected.StartIndex != span.Start {
		fail(r, ctx, "%s start index assertion error: want %d, got %d", what, *expected.StartIndex, span.Start)
	}
	if expected.StopIndex != nil && *expected.StopIndex >= 0 && *expected.StopIndex != span.Stop {
		fail(r, ctx, "%s stop index assertion error: want %d, got %d", what, *expected.StopIndex, span.Stop)
	}
}

func assertOwner(r Reporter, ctx AssertContext, what string, actual *segment.OwnerSegment, expected *ExpectedIdentifier) {
	r.Helper()
	switch {
	case expected == nil && actual != nil:
		fail(r, ctx, "Actual %s owner should not exist.", what)
	case expected != nil && actual == nil:
		fail(r, ctx, "Actual %s owner should exist.", what)
	case expected != nil:
		AssertIdentifier(r, ctx, what+" owner", actual.Identifier, actual.Span, *expected)
	}
}

func assertAlias(r Reporter, ctx AssertContext, what string, actual *segment.AliasSegment, expected *ExpectedIdentifier) {
	r.Helper()
	switch {
	case expected == nil && actual != nil:
		fail(r, ctx, "Actual %s alias should not exist.", what)
	case expected != nil && actual == nil:
		fail(r, ctx, "Actual %s alias should exist.", what)
	case expected != nil:
		AssertIdentifier(r, ctx, what+" alias", actual.Identifier, actual.Span, *expected)
	}
}

// AssertTable checks a table reference with its owner and alias.
func AssertTable(r Reporter, ctx AssertContext, actual *segment.TableSegment, expected ExpectedTable) {
	r.Helper()
	if actual == nil {
		fail(r, ctx, "Actual table should exist.")
		return
	}
	AssertIdentifier(r, ctx, "table", actual.Identifier, actual.Span, expected.ExpectedIdentifier)
	assertOwner(r, ctx, "table", actual.Owner, expected.Owner)
	assertAlias(r, ctx, "table", actual.Alias, expected.Alias)
}

// AssertColumn checks a column reference with its owner.
func AssertColumn(r Reporter, ctx AssertContext, actual *segment.ColumnSegment, expected ExpectedColumn) {
	r.Helper()
	if actual == nil {
		fail(r, ctx, "Actual column should exist.")
		return
	}
	AssertIdentifier(r, ctx, "column", actual.Identifier, actual.Span, expected.ExpectedIdentifier)
	assertOwner(r, ctx, "column", actual.Owner, expected.Owner)
}

// AssertExpression checks a value position.
func AssertExpression(r Reporter, ctx AssertContext, actual segment.ExpressionSegment, expected ExpectedExpression) {
	r.Helper()
	switch {
	case expected.Parameter != nil:
		p, ok := actual.(*segment.ParameterMarkerExpressionSegment)
		if !ok {
			fail(r, ctx, "Expression assertion error: want parameter marker, got %T", actual)
			return
		}
		if p.Index != *expected.Parameter {
			fail(r, ctx, "Parameter marker index assertion error: want %d, got %d", *expected.Parameter, p.Index)
		}
	case expected.Literal != nil:
		l, ok := actual.(*segment.LiteralExpressionSegment)
		if !ok {
			fail(r, ctx, "Expression assertion error: want literal, got %T", actual)
			return
		}
		if l.Text != *expected.Literal {
			fail(r, ctx, "Literal assertion error: want %q, got %q", *expected.Literal, l.Text)
		}
	case expected.Column != nil:
		c, ok := actual.(*segment.ColumnSegment)
		if !ok {
			fail(r, ctx, "Expression assertion error: want column, got %T", actual)
			return
		}
		AssertColumn(r, ctx, c, *expected.Column)
	default:
		fail(r, ctx, "Expected expression is empty.")
	}
}

// AssertSetClause checks assignments pairwise.
func AssertSetClause(r Reporter, ctx AssertContext, actual *segment.SetAssignmentSegment, expected ExpectedSetClause) {
	r.Helper()
	if len(actual.Assignments) != len(expected.Assignments) {
		fail(r, ctx, "Assignments size assertion error: want %d, got %d", len(expected.Assignments), len(actual.Assignments))
		return
	}
	for i, a := range actual.Assignments {
		AssertColumn(r, ctx, a.Column, expected.Assignments[i].Column)
		AssertExpression(r, ctx, a.Value, expected.Assignments[i].Value)
	}
}

// AssertWhere checks predicates pairwise.
func AssertWhere(r Reporter, ctx AssertContext, actual *segment.WhereSegment, expected ExpectedWhere) {
	r.Helper()
	if len(actual.Predicates) != len(expected.Predicates) {
		fail(r, ctx, "Predicates size assertion error: want %d, got %d", len(expected.Predicates), len(actual.Predicates))
		return
	}
	for i, p := range actual.Predicates {
		want := expected.Predicates[i]
		AssertColumn(r, ctx, p.Column, want.Column)
		if p.Operator != want.Operator {
			fail(r, ctx, "Predicate operator assertion error: want %q, got %q", want.Operator, p.Operator)
		}
		AssertExpression(r, ctx, p.Right, want.Right)
	}
}

func assertWhereClause(r Reporter, ctx AssertContext, actual *segment.WhereSegment, expected *ExpectedWhere) {
	r.Helper()
	switch {
	case expected == nil && actual != nil:
		fail(r, ctx, "Actual where segment should not exist.")
	case expected != nil && actual == nil:
		fail(r, ctx, "Actual where segment should exist.")
	case expected != nil:
		AssertWhere(r, ctx, actual, *expected)
	}
}

// AssertInsert checks an INSERT. Each optional clause must be present
// exactly when the fixture declares it.
func AssertInsert(r Reporter, ctx AssertContext, actual *statement.InsertStatement, expected ExpectedInsert) {
	r.Helper()
	AssertTable(r, ctx, actual.Table, expected.Table)

	cols, ok := actual.Columns()
	switch {
	case expected.Columns == nil && ok:
		fail(r, ctx, "Actual insert columns segment should not exist.")
	case expected.Columns != nil && !ok:
		fail(r, ctx, "Actual insert columns segment should exist.")
	case expected.Columns != nil:
		if len(cols.Columns) != len(expected.Columns.Columns) {
			fail(r, ctx, "Insert columns size assertion error: want %d, got %d", len(expected.Columns.Columns), len(cols.Columns))
		} else {
			for i, c := range cols.Columns {
				AssertColumn(r, ctx, c, expected.Columns.Columns[i])
			}
		}
	}

	switch {
	case expected.Values == nil && len(actual.Values) > 0:
		fail(r, ctx, "Actual insert values segment should not exist.")
	case expected.Values != nil && len(actual.Values) == 0:
		fail(r, ctx, "Actual insert values segment should exist.")
	case expected.Values != nil:
		if len(actual.Values) != len(expected.Values.Rows) {
			fail(r, ctx, "Insert values size assertion error: want %d, got %d", len(expected.Values.Rows), len(actual.Values))
			break
		}
		for i, row := range actual.Values {
			want := expected.Values.Rows[i]
			if len(row.Values) != len(want) {
				fail(r, ctx, "Insert values row %d size assertion error: want %d, got %d", i, len(want), len(row.Values))
				continue
			}
			for j, v := range row.Values {
				AssertExpression(r, ctx, v, want[j])
			}
		}
	}

	set, ok := actual.Assignment()
	switch {
	case expected.Set == nil && ok:
		fail(r, ctx, "Actual set assignment segment should not exist.")
	case expected.Set != nil && !ok:
		fail(r, ctx, "Actual set assignment segment should exist.")
	case expected.Set != nil:
		AssertSetClause(r, ctx, set, *expected.Set)
	}
}

// AssertUpdate checks an UPDATE.
func AssertUpdate(r Reporter, ctx AssertContext, actual *statement.UpdateStatement, expected ExpectedUpdate) {
	r.Helper()
	AssertTable(r, ctx, actual.Table, expected.Table)
	if actual.SetAssignment == nil {
		fail(r, ctx, "Actual set assignment segment should exist.")
	} else {
		AssertSetClause(r, ctx, actual.SetAssignment, expected.Set)
	}
	assertWhereClause(r, ctx, actual.Where, expected.Where)
}

// AssertDelete checks a DELETE.
func AssertDelete(r Reporter, ctx AssertContext, actual *statement.DeleteStatement, expected ExpectedDelete) {
	r.Helper()
	AssertTable(r, ctx, actual.Table, expected.Table)
	assertWhereClause(r, ctx, actual.Where, expected.Where)
}

// AssertSelect checks a SELECT.
func AssertSelect(r Reporter, ctx AssertContext, actual *statement.SelectStatement, expected ExpectedSelect) {
	r.Helper()
	if actual.Projections == nil {
		fail(r, ctx, "Actual projections segment should exist.")
	} else {
		p := actual.Projections
		if p.Star != expected.Star {
			fail(r, ctx, "Projection star assertion error: want %t, got %t", expected.Star, p.Star)
		}
		if len(p.Columns) != len(expected.Projections) {
			fail(r, ctx, "Projections size assertion error: want %d, got %d", len(expected.Projections), len(p.Columns))
		} else {
			for i, c := range p.Columns {
				AssertColumn(r, ctx, c.Column, expected.Projections[i].Column)
				assertAlias(r, ctx, "projection", c.Alias, expected.Projections[i].Alias)
			}
		}
	}
	AssertTable(r, ctx, actual.Table, expected.Table)
	assertWhereClause(r, ctx, actual.Where, expected.Where)
}

// AssertStatement dispatches on the statement kind the case expects.
func AssertStatement(r Reporter, ctx AssertContext, actual statement.Statement, c Case) {
	r.Helper()
	switch {
	case c.Insert != nil:
		s, ok := actual.(*statement.InsertStatement)
		if !ok {
			fail(r, ctx, "Statement type assertion error: want INSERT, got %s", typeOf(actual))
			return
		}
		AssertInsert(r, ctx, s, *c.Insert)
	case c.Update != nil:
		s, ok := actual.(*statement.UpdateStatement)
		if !ok {
			fail(r, ctx, "Statement type assertion error: want UPDATE, got %s", typeOf(actual))
			return
		}
		AssertUpdate(r, ctx, s, *c.Update)
	case c.Delete != nil:
		s, ok := actual.(*statement.DeleteStatement)
		if !ok {
			fail(r, ctx, "Statement type assertion error: want DELETE, got %s", typeOf(actual))
			return
		}
		AssertDelete(r, ctx, s, *c.Delete)
	case c.Select != nil:
		s, ok := actual.(*statement.SelectStatement)
		if !ok {
			fail(r, ctx, "Statement type assertion error: want SELECT, got %s", typeOf(actual))
			return
		}
		AssertSelect(r, ctx, s, *c.Select)
	default:
		fail(r, ctx, "Expected statement is empty.")
	}
}

func typeOf(s statement.Statement) string {
	if s == nil {
		return "nil"
	}
	return s.Type().String()
}
