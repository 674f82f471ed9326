// Package identifier normalizes SQL name tokens.
//
// A name may be written bare or enclosed in one of the delimiter pairs
// different dialects use: `name`, "name" or [name]. New records both the
// unquoted value and the delimiter pair so later stages can compare names
// and rebuild the original text.
package identifier

import "strings"

// Value is an identifier as written in SQL text. It is immutable and safe
// for concurrent use.
type Value struct {
	value string
	quote QuoteCharacter
}

// New builds a Value from raw token text.
func New(raw string) Value {
	return Value{value: ExactlyValue(raw), quote: QuoteCharacterOf(raw)}
}

// NewQuoted builds a Value from an already unquoted name.
func NewQuoted(value string, q QuoteCharacter) Value {
	return Value{value: value, quote: q}
}

// ExactlyValue returns raw without its enclosing delimiter pair.
// Unquoted text is returned unchanged. Doubled delimiters inside the
// pair are kept as written.
func ExactlyValue(raw string) string {
	if QuoteCharacterOf(raw) == None {
		return raw
	}
	return raw[1 : len(raw)-1]
}

// Value returns the unquoted name.
func (v Value) Value() string { return v.value }

// QuoteCharacter returns the delimiter pair the name was written with.
func (v Value) QuoteCharacter() QuoteCharacter { return v.quote }

// Unescaped returns the name with each doubled closing delimiter collapsed
// to one, the form a dialect that writes "a""b" means by it. Unquoted names
// are returned unchanged.
func (v Value) Unescaped() string {
	end := v.quote.EndDelimiter()
	if end == "" || !strings.Contains(v.value, end+end) {
		return v.value
	}
	return strings.ReplaceAll(v.value, end+end, end)
}

// IsQuoted reports whether the name was delimited.
func (v Value) IsQuoted() bool { return v.quote != None }

// String rebuilds the name as it was written.
func (v Value) String() string {
	return v.quote.Wrap(v.value)
}

// Equal reports whether a and b have the same value and quote character.
func Equal(a, b Value) bool {
	return a == b
}
