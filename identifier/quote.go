package identifier

import (
	"errors"
	"fmt"
	"strings"
)

// QuoteCharacter identifies the delimiter pair that encloses an identifier.
type QuoteCharacter int

const (
	// None means the identifier was written without delimiters.
	None QuoteCharacter = iota
	// BackQuote is `name`, used by MySQL and H2.
	BackQuote
	// DoubleQuote is "name", the SQL-92 delimited identifier.
	DoubleQuote
	// Bracket is [name], used by SQL Server.
	Bracket
)

// ErrUnknownQuoteCharacter is returned when a quote character name cannot be parsed.
var ErrUnknownQuoteCharacter = errors.New("sqlparser: unknown quote character")

type delimiterPair struct {
	name  string
	start string
	end   string
}

// delimiters is indexed by QuoteCharacter. No delimiter byte is shared between pairs.
var delimiters = [...]delimiterPair{
	None:        {name: "none"},
	BackQuote:   {name: "backquote", start: "`", end: "`"},
	DoubleQuote: {name: "double-quote", start: `"`, end: `"`},
	Bracket:     {name: "bracket", start: "[", end: "]"},
}

// QuoteCharacters returns every delimited style, None excluded.
func QuoteCharacters() []QuoteCharacter {
	return []QuoteCharacter{BackQuote, DoubleQuote, Bracket}
}

// QuoteCharacterOf reports which delimiter pair encloses raw.
// Text shorter than two bytes, or whose first and last bytes are not a
// matching pair, is unquoted.
func QuoteCharacterOf(raw string) QuoteCharacter {
	if len(raw) < 2 {
		return None
	}
	first, last := raw[0], raw[len(raw)-1]
	for _, q := range QuoteCharacters() {
		p := delimiters[q]
		if first == p.start[0] && last == p.end[0] {
			return q
		}
	}
	return None
}

// StartDelimiter returns the opening delimiter, or "" for None.
func (q QuoteCharacter) StartDelimiter() string {
	return q.pair().start
}

// EndDelimiter returns the closing delimiter, or "" for None.
func (q QuoteCharacter) EndDelimiter() string {
	return q.pair().end
}

// Wrap encloses s in the delimiter pair. It does not escape s.
func (q QuoteCharacter) Wrap(s string) string {
	p := q.pair()
	if p.start == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteString(p.start)
	b.WriteString(s)
	b.WriteString(p.end)
	return b.String()
}

func (q QuoteCharacter) String() string {
	return q.pair().name
}

// MarshalText implements encoding.TextMarshaler.
func (q QuoteCharacter) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The empty string decodes to None.
func (q *QuoteCharacter) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if name == "" {
		*q = None
		return nil
	}
	for i, p := range delimiters {
		if p.name == name {
			*q = QuoteCharacter(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownQuoteCharacter, name)
}

func (q QuoteCharacter) pair() delimiterPair {
	if q < 0 || int(q) >= len(delimiters) {
		return delimiters[None]
	}
	return delimiters[q]
}
