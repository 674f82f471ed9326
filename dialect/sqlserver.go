package dialect

import (
	"strconv"

	"github.com/nikola-chen/sqlparser/identifier"
)

var sqlserverQuoter = newQuoter(identifier.Bracket)

// sqlserverDialect reads both [name] and "name" (QUOTED_IDENTIFIER ON) and
// writes brackets.
type sqlserverDialect struct{}

func (d sqlserverDialect) Name() string { return "sqlserver" }

func (d sqlserverDialect) QuoteCharacter() identifier.QuoteCharacter { return identifier.Bracket }

func (d sqlserverDialect) IdentifierQuotes() []identifier.QuoteCharacter {
	return []identifier.QuoteCharacter{identifier.Bracket, identifier.DoubleQuote}
}

func (d sqlserverDialect) QuoteIdent(ident string) string { return sqlserverQuoter.quote(ident) }

func (d sqlserverDialect) Placeholder(n int) string { return "@p" + strconv.Itoa(n) }

func init() {
	Register("sqlserver", sqlserverDialect{})
	Register("mssql", sqlserverDialect{})
}
