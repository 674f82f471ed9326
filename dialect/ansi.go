package dialect

import (
	"strconv"

	"github.com/nikola-chen/sqlparser/identifier"
)

// sql92Quoter is shared by every dialect that writes "name".
var sql92Quoter = newQuoter(identifier.DoubleQuote)

type sql92Dialect struct{}

func (d sql92Dialect) Name() string { return "sql92" }

func (d sql92Dialect) QuoteCharacter() identifier.QuoteCharacter { return identifier.DoubleQuote }

func (d sql92Dialect) IdentifierQuotes() []identifier.QuoteCharacter {
	return []identifier.QuoteCharacter{identifier.DoubleQuote}
}

func (d sql92Dialect) QuoteIdent(ident string) string { return sql92Quoter.quote(ident) }

func (d sql92Dialect) Placeholder(n int) string { return "?" }

type oracleDialect struct{ sql92Dialect }

func (d oracleDialect) Name() string { return "oracle" }

func (d oracleDialect) Placeholder(n int) string { return ":" + strconv.Itoa(n) }

// h2Dialect accepts MySQL-style back quotes as well as "name" but writes the
// SQL-92 form.
type h2Dialect struct{ sql92Dialect }

func (d h2Dialect) Name() string { return "h2" }

func (d h2Dialect) IdentifierQuotes() []identifier.QuoteCharacter {
	return []identifier.QuoteCharacter{identifier.DoubleQuote, identifier.BackQuote}
}

func init() {
	Register("sql92", sql92Dialect{})
	Register("oracle", oracleDialect{})
	Register("h2", h2Dialect{})
}
