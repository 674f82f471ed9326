// Package lexer tokenizes SQL text for a dialect.
//
// Only the delimiters the dialect accepts are read as quoted identifiers;
// anything else fails to lex. Token text is kept exactly as written so the
// identifier package can classify it.
package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/nikola-chen/sqlparser/dialect"
	"github.com/nikola-chen/sqlparser/identifier"
)

// Token types produced by every definition.
const (
	Comment     = "Comment"
	Whitespace  = "Whitespace"
	QuotedIdent = "QuotedIdent"
	String      = "String"
	Number      = "Number"
	Placeholder = "Placeholder"
	Keyword     = "Keyword"
	Ident       = "Ident"
	Operator    = "Operator"
	Punct       = "Punct"
)

// ErrLex is returned when the input contains text no rule matches.
var ErrLex = errors.New("sqlparser: lex error")

// quotedPatterns is indexed by identifier.QuoteCharacter. A doubled
// closing delimiter stays inside the token.
var quotedPatterns = [...]string{
	identifier.BackQuote:   "`(?:[^`]|``)*`",
	identifier.DoubleQuote: `"(?:[^"]|"")*"`,
	identifier.Bracket:     `\[(?:[^\]]|\]\])*\]`,
}

// Keywords are the reserved words of the grammar. An unquoted word that
// matches one case-insensitively lexes as Keyword, never as Ident, so a
// reserved word is only a name when quoted.
var Keywords = []string{
	"AND", "AS", "DELETE", "FALSE", "FROM", "INSERT", "INTO", "NULL",
	"SELECT", "SET", "TRUE", "UPDATE", "VALUES", "WHERE",
}

// IsKeyword reports whether an unquoted word is reserved.
func IsKeyword(word string) bool {
	for _, kw := range Keywords {
		if strings.EqualFold(kw, word) {
			return true
		}
	}
	return false
}

// Token is a single lexeme.
type Token struct {
	Type   string
	Text   string
	Offset int
}

// Definition is the participle lexer definition of one dialect.
type Definition struct {
	rules   *plex.StatefulDefinition
	symbols map[string]plex.TokenType
	ident   plex.TokenType
	keyword plex.TokenType
}

var definitions sync.Map // dialect name -> *Definition

// For returns the lexer definition for d. Definitions are built once per
// dialect name and shared.
func For(d dialect.Dialect) *Definition {
	if def, ok := definitions.Load(d.Name()); ok {
		return def.(*Definition)
	}
	def, _ := definitions.LoadOrStore(d.Name(), build(d))
	return def.(*Definition)
}

// Symbols implements participle's lexer.Definition.
func (def *Definition) Symbols() map[string]plex.TokenType {
	return def.symbols
}

// Lex implements participle's lexer.Definition.
func (def *Definition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	return def.wrap(def.rules.Lex(filename, r))
}

// LexString implements participle's lexer.StringDefinition.
func (def *Definition) LexString(filename string, input string) (plex.Lexer, error) {
	return def.wrap(def.rules.LexString(filename, input))
}

func (def *Definition) wrap(l plex.Lexer, err error) (plex.Lexer, error) {
	if err != nil {
		return nil, err
	}
	return &keywordLexer{Lexer: l, def: def}, nil
}

// keywordLexer retypes reserved Ident tokens as Keyword.
type keywordLexer struct {
	plex.Lexer
	def *Definition
}

func (l *keywordLexer) Next() (plex.Token, error) {
	t, err := l.Lexer.Next()
	if err == nil && t.Type == l.def.ident && IsKeyword(t.Value) {
		t.Type = l.def.keyword
	}
	return t, err
}

func build(d dialect.Dialect) *Definition {
	quoted := make([]string, 0, len(quotedPatterns))
	for _, q := range identifier.QuoteCharacters() {
		if dialect.Accepts(d, q) {
			quoted = append(quoted, quotedPatterns[q])
		}
	}
	rules := []plex.SimpleRule{
		{Name: Comment, Pattern: `--[^\n]*|/\*(?:[^*]|\*+[^*/])*\*+/`},
		{Name: Whitespace, Pattern: `\s+`},
	}
	if len(quoted) > 0 {
		rules = append(rules, plex.SimpleRule{Name: QuotedIdent, Pattern: strings.Join(quoted, "|")})
	}
	rules = append(rules,
		plex.SimpleRule{Name: String, Pattern: `'(?:[^']|'')*'`},
		plex.SimpleRule{Name: Number, Pattern: `[0-9]+(?:\.[0-9]+)?`},
		plex.SimpleRule{Name: Placeholder, Pattern: `\?|\$[0-9]+|:[0-9]+|@p[0-9]+`},
		plex.SimpleRule{Name: Ident, Pattern: `[\p{L}_][\p{L}\p{N}_$]*`},
		plex.SimpleRule{Name: Operator, Pattern: `<>|<=|>=|!=|=|<|>`},
		plex.SimpleRule{Name: Punct, Pattern: `[(),.;*+\-/]`},
	)

	def := &Definition{rules: plex.MustSimple(rules), symbols: map[string]plex.TokenType{}}
	lowest := plex.EOF
	for name, typ := range def.rules.Symbols() {
		def.symbols[name] = typ
		if typ < lowest {
			lowest = typ
		}
	}
	def.ident = def.symbols[Ident]
	def.keyword = lowest - 1
	def.symbols[Keyword] = def.keyword
	return def
}

// Tokenize splits sql into tokens, dropping whitespace and comments.
func Tokenize(d dialect.Dialect, sql string) ([]Token, error) {
	def := For(d)
	lex, err := def.LexString("", sql)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLex, err)
	}
	raw, err := plex.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLex, err)
	}

	names := plex.SymbolsByRune(def)
	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		if t.EOF() {
			break
		}
		typ := names[t.Type]
		if typ == Whitespace || typ == Comment {
			continue
		}
		tokens = append(tokens, Token{Type: typ, Text: t.Value, Offset: t.Pos.Offset})
	}
	return tokens, nil
}

// Identifiers returns every name token in sql, in source order.
func Identifiers(d dialect.Dialect, sql string) ([]identifier.Value, error) {
	tokens, err := Tokenize(d, sql)
	if err != nil {
		return nil, err
	}
	var ids []identifier.Value
	for _, t := range tokens {
		if t.Type == Ident || t.Type == QuotedIdent {
			ids = append(ids, identifier.New(t.Text))
		}
	}
	return ids, nil
}
