// Package parser turns SQL text into statements for a dialect. Every name
// in the result is built with identifier.New from the token exactly as it
// was written.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"

	"github.com/nikola-chen/sqlparser/dialect"
	"github.com/nikola-chen/sqlparser/lexer"
	"github.com/nikola-chen/sqlparser/statement"
)

// parser errors.
var (
	ErrEmptySQL = errors.New("sqlparser: empty sql")
	ErrSyntax   = errors.New("sqlparser: syntax error")
)

// Parser parses statements of one dialect. It is safe for concurrent use.
type Parser struct {
	grammar *participle.Parser[script]
}

var parsers sync.Map // dialect name -> *Parser

// New returns the parser for d. Parsers are built once per dialect name.
func New(d dialect.Dialect) *Parser {
	if p, ok := parsers.Load(d.Name()); ok {
		return p.(*Parser)
	}
	p := &Parser{
		grammar: participle.MustBuild[script](
			participle.Lexer(lexer.For(d)),
			participle.Elide(lexer.Whitespace, lexer.Comment),
			participle.CaseInsensitive(lexer.Keyword),
			participle.UseLookahead(2),
		),
	}
	actual, _ := parsers.LoadOrStore(d.Name(), p)
	return actual.(*Parser)
}

// Parse parses sql with the parser of d.
func Parse(d dialect.Dialect, sql string) (statement.Statement, error) {
	return New(d).Parse(sql)
}

// Parse parses a single statement, optionally terminated by a semicolon.
func (p *Parser) Parse(sql string) (statement.Statement, error) {
	if strings.TrimSpace(sql) == "" {
		return nil, ErrEmptySQL
	}
	tree, err := p.grammar.ParseString("", sql)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, truncate(sql), err)
	}
	if tree.Stmt == nil {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, truncate(sql))
	}
	return newConverter().statement(tree.Stmt), nil
}

func truncate(sql string) string {
	const maxLen = 256
	if len(sql) <= maxLen {
		return sql
	}
	return sql[:maxLen] + "…"
}
