package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestIdentifiersCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &IdentifiersCmd{Dialect: "mysql", SQL: "UPDATE `t_order` SET status = ? WHERE order_id = 1"}
	if err := cmd.Run(&out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{`"value": "t_order"`, `"quote": "backquote"`, `"value": "status"`, `"quote": "none"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %s:\n%s", want, got)
		}
	}
}

func TestConvertCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &ConvertCmd{From: "mysql", To: "postgresql", SQL: "DELETE FROM `t_order` WHERE id = ?"}
	if err := cmd.Run(&out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "DELETE FROM \"t_order\" WHERE id = $1\n"
	if out.String() != want {
		t.Fatalf("sql mismatch:\nwant: %s\ngot : %s", want, out.String())
	}
}

func TestConvertCmdUnknownTarget(t *testing.T) {
	cmd := &ConvertCmd{From: "mysql", To: "db2", SQL: "DELETE FROM t"}
	if err := cmd.Run(&bytes.Buffer{}); err == nil || !strings.Contains(err.Error(), "db2") {
		t.Fatalf("expected unsupported dialect error, got %v", err)
	}
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	good := "- id: ok\n  sql: DELETE FROM t\n  delete: {table: {name: t}}\n"
	bad := "- id: bad\n  sql: DELETE FROM t WHERE a = 1\n  dialects: [mysql]\n  delete: {table: {name: t}}\n"
	if err := os.WriteFile(filepath.Join(dir, "good.yaml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := (&CheckCmd{Dir: dir, Patterns: []string{"*.yaml"}}).Run(&out); err != nil {
		t.Fatalf("Run: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "1 cases, 0 failures") {
		t.Fatalf("unexpected summary: %s", out.String())
	}

	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	err := (&CheckCmd{Dir: dir, Patterns: []string{"*.yaml"}}).Run(&out)
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("expected errCheckFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "FAIL bad/mysql") || !strings.Contains(out.String(), "where segment should not exist") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestCLIParses(t *testing.T) {
	parser, err := kong.New(&CLI, kong.Name("sqlparser"))
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	ctx, err := parser.Parse([]string{"convert", "--to", "sqlserver", "SELECT * FROM t"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ctx.Command() != "convert <sql>" {
		t.Fatalf("unexpected command %q", ctx.Command())
	}
	if CLI.Convert.To != "sqlserver" || CLI.Convert.From != "mysql" {
		t.Fatalf("unexpected flags %+v", CLI.Convert)
	}
}

func TestVersionAndDialects(t *testing.T) {
	var out bytes.Buffer
	if err := (&VersionCmd{}).Run(&out); err != nil {
		t.Fatal(err)
	}
	if err := (&DialectsCmd{}).Run(&out); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"sqlparser version " + version, "mysql", "backquote", "sqlserver", "bracket"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}
