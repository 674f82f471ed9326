package parser

import plex "github.com/alecthomas/participle/v2/lexer"

// The grammar structs below are filled in by participle. Pos is the first
// token of a node; Tokens holds every token it matched, elided ones included.

//nolint:govet // participle grammar tags are not standard struct tags
type script struct {
	Stmt *stmt `@@ ";"?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type stmt struct {
	Insert *insertStmt `  @@`
	Update *updateStmt `| @@`
	Delete *deleteStmt `| @@`
	Select *selectStmt `| @@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type insertStmt struct {
	Table   *tableRef   `"INSERT" "INTO" @@`
	Columns *columnList `@@?`
	Body    *insertBody `@@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type insertBody struct {
	Rows []*valuesRow `  "VALUES" @@ ( "," @@ )*`
	Set  *setClause   `| @@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type updateStmt struct {
	Table *tableRef    `"UPDATE" @@`
	Set   *setClause   `@@`
	Where *whereClause `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type deleteStmt struct {
	Table *tableRef    `"DELETE" "FROM" @@`
	Where *whereClause `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type selectStmt struct {
	Projections *projections `"SELECT" @@`
	Table       *tableRef    `"FROM" @@`
	Where       *whereClause `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type projections struct {
	Pos     plex.Position
	Tokens  []plex.Token
	Star    bool          `  @"*"`
	Columns []*projection `| @@ ( "," @@ )*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type projection struct {
	Pos    plex.Position
	Tokens []plex.Token
	Column *qualifiedName `@@`
	Alias  *namePart      `( "AS"? @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type tableRef struct {
	Pos    plex.Position
	Tokens []plex.Token
	Name   *qualifiedName `@@`
	Alias  *namePart      `( "AS"? @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type qualifiedName struct {
	Parts []*namePart `@@ ( "." @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type namePart struct {
	Pos  plex.Position
	Text string `@(Ident | QuotedIdent)`
}

//nolint:govet // participle grammar tags are not standard struct tags
type columnList struct {
	Pos     plex.Position
	Tokens  []plex.Token
	Columns []*qualifiedName `"(" @@ ( "," @@ )* ")"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type valuesRow struct {
	Pos    plex.Position
	Tokens []plex.Token
	Values []*expr `"(" @@ ( "," @@ )* ")"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type setClause struct {
	Pos         plex.Position
	Tokens      []plex.Token
	Assignments []*assignment `"SET" @@ ( "," @@ )*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type assignment struct {
	Pos    plex.Position
	Tokens []plex.Token
	Column *qualifiedName `@@ "="`
	Value  *expr          `@@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type whereClause struct {
	Pos        plex.Position
	Tokens     []plex.Token
	Predicates []*predicate `"WHERE" @@ ( "AND" @@ )*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type predicate struct {
	Pos      plex.Position
	Tokens   []plex.Token
	Column   *qualifiedName `@@`
	Operator string         `@Operator`
	Right    *expr          `@@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type expr struct {
	Pos    plex.Position
	Tokens []plex.Token
	Null   bool           `  @"NULL"`
	Bool   *string        `| @("TRUE" | "FALSE")`
	String *string        `| @String`
	Number *string        `| @("-"? Number)`
	Param  *string        `| @Placeholder`
	Column *qualifiedName `| @@`
}
