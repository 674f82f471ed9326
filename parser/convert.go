package parser

import (
	"strconv"
	"strings"

	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/nikola-chen/sqlparser/identifier"
	"github.com/nikola-chen/sqlparser/segment"
	"github.com/nikola-chen/sqlparser/statement"
)

// converter maps the grammar tree onto segments. It walks the tree in
// source order so parameter markers are numbered as written.
type converter struct {
	params int
}

func newConverter() *converter {
	return &converter{}
}

func (c *converter) statement(s *stmt) statement.Statement {
	switch {
	case s.Insert != nil:
		return c.insert(s.Insert)
	case s.Update != nil:
		return c.update(s.Update)
	case s.Delete != nil:
		return c.delete(s.Delete)
	default:
		return c.selectStmt(s.Select)
	}
}

func (c *converter) insert(s *insertStmt) *statement.InsertStatement {
	out := &statement.InsertStatement{Table: c.table(s.Table)}
	if s.Columns != nil {
		cols := &segment.InsertColumnsSegment{Span: spanOf(s.Columns.Pos, s.Columns.Tokens)}
		for _, q := range s.Columns.Columns {
			cols.Columns = append(cols.Columns, c.column(q))
		}
		out.InsertColumns = cols
	}
	if s.Body.Set != nil {
		out.SetAssignment = c.set(s.Body.Set)
	}
	for _, row := range s.Body.Rows {
		values := &segment.InsertValuesSegment{Span: spanOf(row.Pos, row.Tokens)}
		for _, e := range row.Values {
			values.Values = append(values.Values, c.expr(e))
		}
		out.Values = append(out.Values, values)
	}
	out.Parameters = c.params
	return out
}

func (c *converter) update(s *updateStmt) *statement.UpdateStatement {
	out := &statement.UpdateStatement{
		Table:         c.table(s.Table),
		SetAssignment: c.set(s.Set),
		Where:         c.where(s.Where),
	}
	out.Parameters = c.params
	return out
}

func (c *converter) delete(s *deleteStmt) *statement.DeleteStatement {
	out := &statement.DeleteStatement{
		Table: c.table(s.Table),
		Where: c.where(s.Where),
	}
	out.Parameters = c.params
	return out
}

func (c *converter) selectStmt(s *selectStmt) *statement.SelectStatement {
	proj := &segment.ProjectionsSegment{
		Span: spanOf(s.Projections.Pos, s.Projections.Tokens),
		Star: s.Projections.Star,
	}
	for _, p := range s.Projections.Columns {
		proj.Columns = append(proj.Columns, &segment.ColumnProjectionSegment{
			Span:   spanOf(p.Pos, p.Tokens),
			Column: c.column(p.Column),
			Alias:  alias(p.Alias),
		})
	}
	out := &statement.SelectStatement{
		Projections: proj,
		Table:       c.table(s.Table),
		Where:       c.where(s.Where),
	}
	out.Parameters = c.params
	return out
}

func (c *converter) table(r *tableRef) *segment.TableSegment {
	owner, name, span := qualified(r.Name)
	return &segment.TableSegment{
		Span:       span,
		Identifier: name,
		Owner:      owner,
		Alias:      alias(r.Alias),
	}
}

func (c *converter) column(q *qualifiedName) *segment.ColumnSegment {
	owner, name, span := qualified(q)
	return &segment.ColumnSegment{Span: span, Identifier: name, Owner: owner}
}

func (c *converter) set(s *setClause) *segment.SetAssignmentSegment {
	out := &segment.SetAssignmentSegment{Span: spanOf(s.Pos, s.Tokens)}
	for _, a := range s.Assignments {
		out.Assignments = append(out.Assignments, &segment.AssignmentSegment{
			Span:   spanOf(a.Pos, a.Tokens),
			Column: c.column(a.Column),
			Value:  c.expr(a.Value),
		})
	}
	return out
}

func (c *converter) where(w *whereClause) *segment.WhereSegment {
	if w == nil {
		return nil
	}
	out := &segment.WhereSegment{Span: spanOf(w.Pos, w.Tokens)}
	for _, p := range w.Predicates {
		out.Predicates = append(out.Predicates, &segment.PredicateSegment{
			Span:     spanOf(p.Pos, p.Tokens),
			Column:   c.column(p.Column),
			Operator: p.Operator,
			Right:    c.expr(p.Right),
		})
	}
	return out
}

func (c *converter) expr(e *expr) segment.ExpressionSegment {
	span := spanOf(e.Pos, e.Tokens)
	switch {
	case e.Null:
		return &segment.LiteralExpressionSegment{Span: span, Kind: segment.NullLiteral, Text: tokenText(e.Tokens)}
	case e.Bool != nil:
		return &segment.LiteralExpressionSegment{Span: span, Kind: segment.BooleanLiteral, Text: *e.Bool, Value: strings.EqualFold(*e.Bool, "TRUE")}
	case e.String != nil:
		return &segment.LiteralExpressionSegment{Span: span, Kind: segment.StringLiteral, Text: *e.String, Value: unquoteString(*e.String)}
	case e.Number != nil:
		return &segment.LiteralExpressionSegment{Span: span, Kind: segment.NumberLiteral, Text: sourceText(e.Tokens), Value: number(*e.Number)}
	case e.Param != nil:
		marker := &segment.ParameterMarkerExpressionSegment{Span: span, Index: c.params, Text: *e.Param}
		c.params++
		return marker
	default:
		return c.column(e.Column)
	}
}

func qualified(q *qualifiedName) (*segment.OwnerSegment, identifier.Value, segment.Span) {
	first, last := q.Parts[0], q.Parts[len(q.Parts)-1]
	span := segment.Span{Start: first.Pos.Offset, Stop: partStop(last)}
	name := identifier.New(last.Text)
	if len(q.Parts) == 1 {
		return nil, name, span
	}
	owner := &segment.OwnerSegment{
		Span:       segment.Span{Start: first.Pos.Offset, Stop: partStop(first)},
		Identifier: identifier.New(first.Text),
	}
	return owner, name, span
}

func alias(n *namePart) *segment.AliasSegment {
	if n == nil {
		return nil
	}
	return &segment.AliasSegment{
		Span:       segment.Span{Start: n.Pos.Offset, Stop: partStop(n)},
		Identifier: identifier.New(n.Text),
	}
}

func partStop(n *namePart) int {
	return n.Pos.Offset + len(n.Text) - 1
}

// spanOf returns the range from pos to the end of the last significant token.
func spanOf(pos plex.Position, tokens []plex.Token) segment.Span {
	stop := pos.Offset
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		if t.EOF() || elided(t.Value) {
			continue
		}
		stop = t.Pos.Offset + len(t.Value) - 1
		break
	}
	return segment.Span{Start: pos.Offset, Stop: stop}
}

// elided reports whether a token is whitespace or a comment.
func elided(v string) bool {
	return strings.TrimSpace(v) == "" || strings.HasPrefix(v, "--") || strings.HasPrefix(v, "/*")
}

func tokenText(tokens []plex.Token) string {
	for _, t := range tokens {
		if !t.EOF() && !elided(t.Value) {
			return t.Value
		}
	}
	return ""
}

// sourceText joins the tokens from the first significant one to the last,
// giving the text as written.
func sourceText(tokens []plex.Token) string {
	first, last := -1, -1
	for i, t := range tokens {
		if t.EOF() || elided(t.Value) {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range tokens[first : last+1] {
		b.WriteString(t.Value)
	}
	return b.String()
}

func unquoteString(s string) string {
	if len(s) < 2 {
		return s
	}
	return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
}

func number(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
