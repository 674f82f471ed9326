// Package sqlparser parses INSERT, UPDATE, DELETE and SELECT statements in
// several SQL dialects, keeping every identifier together with the quote
// style it was written in.
package sqlparser

import (
	"github.com/nikola-chen/sqlparser/engine"
	"github.com/nikola-chen/sqlparser/statement"
)

type Engine = engine.Engine
type Logger = engine.Logger
type Config = engine.Config
type Option = engine.Option
type Statement = statement.Statement

// Open returns an Engine for the named dialect.
func Open(dialectName string, opts ...Option) (*Engine, error) {
	return engine.Open(dialectName, opts...)
}

// Parse parses sql once under the named dialect.
func Parse(dialectName, sql string) (Statement, error) {
	e, err := engine.Open(dialectName, engine.WithConfig(engine.Config{CacheSize: -1}))
	if err != nil {
		return nil, err
	}
	return e.Parse(sql)
}
