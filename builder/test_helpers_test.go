package builder_test

import (
	"testing"

	"github.com/nikola-chen/sqlparser/dialect"
	"github.com/nikola-chen/sqlparser/parser"
	"github.com/nikola-chen/sqlparser/statement"
)

func mustParse(t *testing.T, dialectName, sql string) statement.Statement {
	t.Helper()
	stmt, err := parser.Parse(dialect.MustGet(dialectName), sql)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", sql, err)
	}
	return stmt
}
