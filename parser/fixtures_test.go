package parser_test

import (
	"os"
	"testing"

	"github.com/nikola-chen/sqlparser/parser"
	"github.com/nikola-chen/sqlparser/sqltest"
)

func TestFixtures(t *testing.T) {
	cases, err := sqltest.LoadCases(os.DirFS("testdata"), "*.yaml")
	if err != nil {
		t.Fatalf("LoadCases: %v", err)
	}
	if len(cases) == 0 {
		t.Fatalf("no cases under testdata")
	}
	sqltest.Run(t, parser.Parse, cases)
}
