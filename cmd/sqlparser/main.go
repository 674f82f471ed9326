// Command sqlparser inspects, converts and checks SQL statements across
// dialects.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/nikola-chen/sqlparser/builder"
	"github.com/nikola-chen/sqlparser/dialect"
	"github.com/nikola-chen/sqlparser/engine"
	"github.com/nikola-chen/sqlparser/identifier"
	"github.com/nikola-chen/sqlparser/parser"
	"github.com/nikola-chen/sqlparser/sqltest"
)

const version = "0.1.0"

var errCheckFailed = errors.New("sqlparser: fixture check failed")

// CLI defines the command-line interface for sqlparser.
var CLI struct {
	LogSQL    bool          `name:"log-sql" help:"Log every parse to stderr"`
	SlowParse time.Duration `name:"slow-parse" help:"Log parses slower than this"`
	CacheSize int           `name:"cache-size" help:"Statement cache bound, negative disables"`

	Identifiers IdentifiersCmd `cmd:"" help:"List the identifiers of a statement"`
	Convert     ConvertCmd     `cmd:"" help:"Rewrite a statement for another dialect"`
	Check       CheckCmd       `cmd:"" help:"Run YAML fixture cases"`
	Dialects    DialectsCmd    `cmd:"" help:"List registered dialects"`
	Version     VersionCmd     `cmd:"" help:"Print version information"`
}

func engineOptions() []engine.Option {
	cfg := engine.Config{
		LogSQL:    CLI.LogSQL,
		SlowParse: CLI.SlowParse,
		CacheSize: CLI.CacheSize,
	}
	opts := []engine.Option{engine.WithConfig(cfg)}
	if cfg.LogSQL || cfg.SlowParse > 0 {
		opts = append(opts, engine.WithLogger(engine.StdLogger()))
	}
	return opts
}

type identifierJSON struct {
	Value string                    `json:"value"`
	Quote identifier.QuoteCharacter `json:"quote"`
}

// IdentifiersCmd prints every identifier of a statement as JSON.
type IdentifiersCmd struct {
	Dialect string `short:"d" default:"mysql" help:"Dialect to parse with"`
	SQL     string `arg:"" help:"SQL statement"`
}

func (c *IdentifiersCmd) Run(out io.Writer) error {
	e, err := engine.Open(c.Dialect, engineOptions()...)
	if err != nil {
		return err
	}
	stmt, err := e.Parse(c.SQL)
	if err != nil {
		return err
	}
	values := stmt.Identifiers()
	list := make([]identifierJSON, 0, len(values))
	for _, v := range values {
		list = append(list, identifierJSON{Value: v.Value(), Quote: v.QuoteCharacter()})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// ConvertCmd rewrites a statement for another dialect.
type ConvertCmd struct {
	From     string `default:"mysql" help:"Dialect of the input"`
	To       string `required:"" help:"Dialect of the output"`
	QuoteAll bool   `name:"quote-all" help:"Quote every identifier"`
	SQL      string `arg:"" help:"SQL statement"`
}

func (c *ConvertCmd) Run(out io.Writer) error {
	e, err := engine.Open(c.From, engineOptions()...)
	if err != nil {
		return err
	}
	target, ok := dialect.Get(c.To)
	if !ok {
		return fmt.Errorf("%w: %s", dialect.ErrUnsupported, c.To)
	}
	var opts []builder.Option
	if c.QuoteAll {
		opts = append(opts, builder.QuoteAll())
	}
	sql, err := e.Convert(c.SQL, target, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, sql)
	return err
}

// CheckCmd runs fixture cases and reports failures.
type CheckCmd struct {
	Dir      string   `short:"C" default:"." type:"existingdir" help:"Directory the patterns are relative to"`
	Patterns []string `arg:"" help:"Glob patterns of YAML case files"`
	Verbose  bool     `short:"v" help:"Print passing cases"`
}

func (c *CheckCmd) Run(out io.Writer) error {
	cases, err := sqltest.LoadCases(os.DirFS(c.Dir), c.Patterns...)
	if err != nil {
		return err
	}
	failed := 0
	for _, tc := range cases {
		for _, name := range tc.RunDialects() {
			rec := &sqltest.Recorder{}
			sqltest.Check(rec, parser.Parse, tc, name)
			if rec.Failed() {
				failed++
				fmt.Fprintf(out, "FAIL %s/%s\n%s\n", tc.ID, name, strings.Join(rec.Failures, "\n"))
				continue
			}
			if c.Verbose {
				fmt.Fprintf(out, "ok   %s/%s\n", tc.ID, name)
			}
		}
	}
	fmt.Fprintf(out, "%d cases, %d failures\n", len(cases), failed)
	if failed > 0 {
		return errCheckFailed
	}
	return nil
}

// DialectsCmd lists registered dialect names.
type DialectsCmd struct{}

func (c *DialectsCmd) Run(out io.Writer) error {
	for _, name := range dialect.Names() {
		d := dialect.MustGet(name)
		fmt.Fprintf(out, "%-12s %s\n", name, d.QuoteCharacter())
	}
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(out io.Writer) error {
	_, err := fmt.Fprintf(out, "sqlparser version %s\n", version)
	return err
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sqlparser"),
		kong.Description("Multi-dialect SQL identifier inspection and conversion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
