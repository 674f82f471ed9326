// Package builder writes statements back to SQL text.
//
// By default every name is written exactly as it was parsed, delimiters
// included. WithDialect rewrites quoted names with the delimiters of
// another dialect.
package builder

import (
	"bytes"
	"errors"

	"github.com/nikola-chen/sqlparser/dialect"
	"github.com/nikola-chen/sqlparser/statement"
)

// builder errors.
var (
	ErrUnsupportedStatement = errors.New("sqlparser: unsupported statement")
	ErrMissingTable         = errors.New("sqlparser: missing table")
)

// Option configures Build.
type Option func(*sqlBuilder)

// WithDialect writes quoted names with the delimiters of d.
func WithDialect(d dialect.Dialect) Option {
	return func(b *sqlBuilder) {
		b.d = d
	}
}

// QuoteAll quotes unquoted names too. It has no effect without WithDialect.
func QuoteAll() Option {
	return func(b *sqlBuilder) {
		b.quoteAll = true
	}
}

// WithPlaceholders writes parameter markers in the placeholder style of the
// dialect given by WithDialect.
func WithPlaceholders() Option {
	return func(b *sqlBuilder) {
		b.placeholders = true
	}
}

// Build generates SQL for stmt.
func Build(stmt statement.Statement, opts ...Option) (string, error) {
	b := &sqlBuilder{}
	for _, opt := range opts {
		opt(b)
	}
	b.buf.Grow(128)

	switch s := stmt.(type) {
	case *statement.InsertStatement:
		return b.insert(s)
	case *statement.UpdateStatement:
		return b.update(s)
	case *statement.DeleteStatement:
		return b.delete(s)
	case *statement.SelectStatement:
		return b.selectSQL(s)
	default:
		return "", ErrUnsupportedStatement
	}
}

type sqlBuilder struct {
	buf          bytes.Buffer
	d            dialect.Dialect
	quoteAll     bool
	placeholders bool
}
