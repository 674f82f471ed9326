package sqltest

import (
	"testing"

	"github.com/nikola-chen/sqlparser/dialect"
	"github.com/nikola-chen/sqlparser/statement"
)

// ParseFunc parses sql under d.
type ParseFunc func(d dialect.Dialect, sql string) (statement.Statement, error)

// Check parses c under the named dialect and asserts the result.
func Check(r Reporter, parse ParseFunc, c Case, dialectName string) {
	r.Helper()
	ctx := AssertContext{CaseID: c.ID, SQL: c.SQL, Dialect: dialectName}
	d, ok := dialect.Get(dialectName)
	if !ok {
		fail(r, ctx, "%v: %s", dialect.ErrUnsupported, dialectName)
		return
	}
	stmt, err := parse(d, c.SQL)
	if err != nil {
		fail(r, ctx, "parse error: %v", err)
		return
	}
	AssertStatement(r, ctx, stmt, c)
}

// Run runs every case as a subtest per dialect.
func Run(t *testing.T, parse ParseFunc, cases []Case) {
	t.Helper()
	for _, c := range cases {
		for _, name := range c.RunDialects() {
			t.Run(c.ID+"/"+name, func(t *testing.T) {
				t.Parallel()
				Check(t, parse, c, name)
			})
		}
	}
}
