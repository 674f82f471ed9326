package sqltest

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/nikola-chen/sqlparser/identifier"
)

// ErrInvalidCase is returned for fixtures that cannot be run.
var ErrInvalidCase = errors.New("sqlparser: invalid test case")

// DefaultDialects are used for cases that do not list dialects.
var DefaultDialects = []string{"mysql", "postgresql", "sqlserver", "oracle", "sql92", "h2"}

// Case is one fixture: a SQL text and the statement it must parse to.
// Exactly one of Insert, Update, Delete and Select is set.
type Case struct {
	ID       string          `yaml:"id"`
	SQL      string          `yaml:"sql"`
	Dialects []string        `yaml:"dialects"`
	Insert   *ExpectedInsert `yaml:"insert"`
	Update   *ExpectedUpdate `yaml:"update"`
	Delete   *ExpectedDelete `yaml:"delete"`
	Select   *ExpectedSelect `yaml:"select"`
	// Source is the file the case was loaded from.
	Source string `yaml:"-"`
}

// RunDialects returns the dialects the case applies to.
func (c Case) RunDialects() []string {
	if len(c.Dialects) == 0 {
		return DefaultDialects
	}
	return c.Dialects
}

// ExpectedIdentifier is a name as the fixture declares it. Nil indexes are
// not checked.
type ExpectedIdentifier struct {
	Name       string                    `yaml:"name"`
	Quote      identifier.QuoteCharacter `yaml:"quote"`
	StartIndex *int                      `yaml:"start-index"`
	StopIndex  *int                      `yaml:"stop-index"`
}

// ExpectedTable is a table reference.
type ExpectedTable struct {
	ExpectedIdentifier `yaml:",inline"`
	Owner              *ExpectedIdentifier `yaml:"owner"`
	Alias              *ExpectedIdentifier `yaml:"alias"`
}

// ExpectedColumn is a column reference.
type ExpectedColumn struct {
	ExpectedIdentifier `yaml:",inline"`
	Owner              *ExpectedIdentifier `yaml:"owner"`
}

// ExpectedExpression is a value position. Exactly one field is set.
type ExpectedExpression struct {
	Column    *ExpectedColumn `yaml:"column"`
	Literal   *string         `yaml:"literal"`
	Parameter *int            `yaml:"parameter"`
}

// ExpectedAssignment is column = value.
type ExpectedAssignment struct {
	Column ExpectedColumn     `yaml:"column"`
	Value  ExpectedExpression `yaml:"value"`
}

// ExpectedSetClause is a SET clause.
type ExpectedSetClause struct {
	Assignments []ExpectedAssignment `yaml:"assignments"`
}

// ExpectedPredicate is column <op> value.
type ExpectedPredicate struct {
	Column   ExpectedColumn     `yaml:"column"`
	Operator string             `yaml:"operator"`
	Right    ExpectedExpression `yaml:"right"`
}

// ExpectedWhere is a WHERE clause.
type ExpectedWhere struct {
	Predicates []ExpectedPredicate `yaml:"predicates"`
}

// ExpectedInsertColumns is the column list of an INSERT.
type ExpectedInsertColumns struct {
	Columns []ExpectedColumn `yaml:"columns"`
}

// ExpectedInsertValues are the rows of an INSERT ... VALUES.
type ExpectedInsertValues struct {
	Rows [][]ExpectedExpression `yaml:"rows"`
}

// ExpectedInsert is an INSERT statement. Nil clauses must be absent.
type ExpectedInsert struct {
	Table   ExpectedTable          `yaml:"table"`
	Columns *ExpectedInsertColumns `yaml:"insert-columns"`
	Values  *ExpectedInsertValues  `yaml:"values"`
	Set     *ExpectedSetClause     `yaml:"set"`
}

// ExpectedUpdate is an UPDATE statement.
type ExpectedUpdate struct {
	Table ExpectedTable     `yaml:"table"`
	Set   ExpectedSetClause `yaml:"set"`
	Where *ExpectedWhere    `yaml:"where"`
}

// ExpectedDelete is a DELETE statement.
type ExpectedDelete struct {
	Table ExpectedTable  `yaml:"table"`
	Where *ExpectedWhere `yaml:"where"`
}

// ExpectedProjection is one select list entry.
type ExpectedProjection struct {
	Column ExpectedColumn      `yaml:"column"`
	Alias  *ExpectedIdentifier `yaml:"alias"`
}

// ExpectedSelect is a SELECT statement.
type ExpectedSelect struct {
	Star        bool                 `yaml:"star"`
	Projections []ExpectedProjection `yaml:"projections"`
	Table       ExpectedTable        `yaml:"table"`
	Where       *ExpectedWhere       `yaml:"where"`
}

// LoadCases reads every YAML file matching patterns in fsys. Each file
// holds a list of cases.
func LoadCases(fsys fs.FS, patterns ...string) ([]Case, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	var cases []Case
	seen := map[string]string{}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}
		var loaded []Case
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		for _, c := range loaded {
			c.Source = file
			if err := c.validate(); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			if prev, ok := seen[c.ID]; ok {
				return nil, fmt.Errorf("%s: %w: duplicate id %q (first in %s)", file, ErrInvalidCase, c.ID, prev)
			}
			seen[c.ID] = file
			cases = append(cases, c)
		}
	}
	return cases, nil
}

func (c Case) validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidCase)
	}
	if c.SQL == "" {
		return fmt.Errorf("%w: %s: missing sql", ErrInvalidCase, c.ID)
	}
	n := 0
	for _, set := range []bool{c.Insert != nil, c.Update != nil, c.Delete != nil, c.Select != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("%w: %s: expected exactly one statement, got %d", ErrInvalidCase, c.ID, n)
	}
	return nil
}
