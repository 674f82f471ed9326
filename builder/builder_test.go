package builder_test

import (
	"errors"
	"testing"

	"github.com/nikola-chen/sqlparser/builder"
	"github.com/nikola-chen/sqlparser/dialect"
	"github.com/nikola-chen/sqlparser/identifier"
	"github.com/nikola-chen/sqlparser/segment"
	"github.com/nikola-chen/sqlparser/statement"
)

func TestBuildPreservesQuoting(t *testing.T) {
	tests := []struct {
		dialect string
		sql     string
		want    string
	}{
		{
			dialect: "mysql",
			sql:     "insert into `t_order` (`order_id`, user_id) values (?, 'a''b'), (2, NULL)",
			want:    "INSERT INTO `t_order` (`order_id`, user_id) VALUES (?, 'a''b'), (2, NULL)",
		},
		{
			dialect: "mysql",
			sql:     "INSERT INTO t SET `a` = ?, b = 1;",
			want:    "INSERT INTO t SET `a` = ?, b = 1",
		},
		{
			dialect: "sqlserver",
			sql:     `UPDATE [dbo].[T] AS o SET o.[c] = @p1 WHERE "id" >= 10 AND x <> 'y'`,
			want:    `UPDATE [dbo].[T] o SET o.[c] = @p1 WHERE "id" >= 10 AND x <> 'y'`,
		},
		{
			dialect: "postgresql",
			sql:     `DELETE FROM "Orders" WHERE "a""b" = $1`,
			want:    `DELETE FROM "Orders" WHERE "a""b" = $1`,
		},
		{
			dialect: "h2",
			sql:     "SELECT `u`.name AS \"n\" FROM users u WHERE active = TRUE",
			want:    "SELECT `u`.name AS \"n\" FROM users u WHERE active = TRUE",
		},
		{
			dialect: "oracle",
			sql:     "select * from t",
			want:    "SELECT * FROM t",
		},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := builder.Build(mustParse(t, tt.dialect, tt.sql))
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("sql mismatch:\nwant: %s\ngot : %s", tt.want, got)
			}
		})
	}
}

func TestBuildRequotesForDialect(t *testing.T) {
	stmt := mustParse(t, "mysql", "INSERT INTO `t_order` (`a``b`, user_id) VALUES (?, ?)")

	got, err := builder.Build(stmt, builder.WithDialect(dialect.MustGet("postgresql")), builder.WithPlaceholders())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := `INSERT INTO "t_order" ("a` + "`" + `b", user_id) VALUES ($1, $2)`
	if got != want {
		t.Fatalf("sql mismatch:\nwant: %s\ngot : %s", want, got)
	}

	got, err = builder.Build(stmt, builder.WithDialect(dialect.MustGet("sqlserver")), builder.QuoteAll())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want = "INSERT INTO [t_order] ([a`b], [user_id]) VALUES (?, ?)"
	if got != want {
		t.Fatalf("sql mismatch:\nwant: %s\ngot : %s", want, got)
	}
}

func TestBuildRequoteEscapesTargetDelimiter(t *testing.T) {
	stmt := mustParse(t, "sqlserver", `SELECT [a"b], "c]]d" FROM t`)
	got, err := builder.Build(stmt, builder.WithDialect(dialect.MustGet("postgresql")))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	// "c]]d" is double-quoted, so its brackets are not escapes.
	want := `SELECT "a""b", "c]]d" FROM t`
	if got != want {
		t.Fatalf("sql mismatch:\nwant: %s\ngot : %s", want, got)
	}
}

func TestBuildRoundTripReparses(t *testing.T) {
	sql := "UPDATE `a`.`b` SET c = 'x' WHERE `d` = ?"
	first := mustParse(t, "mysql", sql)
	out, err := builder.Build(first)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	second := mustParse(t, "mysql", out)
	a, b := first.Identifiers(), second.Identifiers()
	if len(a) != len(b) {
		t.Fatalf("identifier count changed: %d != %d", len(a), len(b))
	}
	for i := range a {
		if !identifier.Equal(a[i], b[i]) {
			t.Fatalf("identifier %d changed: %v != %v", i, a[i], b[i])
		}
	}
}

type otherStatement struct{ statement.DeleteStatement }

func TestBuildErrors(t *testing.T) {
	if _, err := builder.Build(&otherStatement{}); !errors.Is(err, builder.ErrUnsupportedStatement) {
		t.Fatalf("expected ErrUnsupportedStatement, got %v", err)
	}
	if _, err := builder.Build(&statement.DeleteStatement{}); !errors.Is(err, builder.ErrMissingTable) {
		t.Fatalf("expected ErrMissingTable, got %v", err)
	}

	table := &segment.TableSegment{Identifier: identifier.New("t")}
	if _, err := builder.Build(&statement.InsertStatement{Table: table}); err == nil {
		t.Fatalf("expected error for insert without values")
	}
	mismatch := &statement.InsertStatement{
		Table: table,
		InsertColumns: &segment.InsertColumnsSegment{Columns: []*segment.ColumnSegment{
			{Identifier: identifier.New("a")},
		}},
		Values: []*segment.InsertValuesSegment{{}},
	}
	if _, err := builder.Build(mismatch); err == nil {
		t.Fatalf("expected error for values length mismatch")
	}
	if _, err := builder.Build(&statement.UpdateStatement{Table: table}); err == nil {
		t.Fatalf("expected error for update without set")
	}
	if _, err := builder.Build(&statement.SelectStatement{Table: table}); err == nil {
		t.Fatalf("expected error for select without projections")
	}
}
