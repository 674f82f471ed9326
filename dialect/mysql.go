package dialect

import "github.com/nikola-chen/sqlparser/identifier"

var mysqlQuoter = newQuoter(identifier.BackQuote)

type mysqlDialect struct{}

func (d mysqlDialect) Name() string { return "mysql" }

func (d mysqlDialect) QuoteCharacter() identifier.QuoteCharacter { return identifier.BackQuote }

func (d mysqlDialect) IdentifierQuotes() []identifier.QuoteCharacter {
	return []identifier.QuoteCharacter{identifier.BackQuote}
}

func (d mysqlDialect) QuoteIdent(ident string) string { return mysqlQuoter.quote(ident) }

func (d mysqlDialect) Placeholder(n int) string { return "?" }

func init() {
	Register("mysql", mysqlDialect{})
}
