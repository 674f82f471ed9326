package dialect

import (
	"strconv"

	"github.com/nikola-chen/sqlparser/identifier"
)

var postgresPlaceholders = [...]string{
	"$1", "$2", "$3", "$4", "$5", "$6", "$7", "$8", "$9", "$10",
	"$11", "$12", "$13", "$14", "$15", "$16", "$17", "$18", "$19", "$20",
}

var pgQuoter = newQuoter(identifier.DoubleQuote)

type postgresDialect struct{}

func (d postgresDialect) Name() string { return "postgresql" }

func (d postgresDialect) QuoteCharacter() identifier.QuoteCharacter { return identifier.DoubleQuote }

func (d postgresDialect) IdentifierQuotes() []identifier.QuoteCharacter {
	return []identifier.QuoteCharacter{identifier.DoubleQuote}
}

func (d postgresDialect) QuoteIdent(ident string) string { return pgQuoter.quote(ident) }

func (d postgresDialect) Placeholder(n int) string {
	if n > 0 && n <= 20 {
		return postgresPlaceholders[n-1]
	}
	return "$" + strconv.Itoa(n)
}

func init() {
	Register("postgres", postgresDialect{})
	Register("postgresql", postgresDialect{})
}
