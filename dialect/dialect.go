// Package dialect describes the lexical conventions of the SQL dialects the
// parser understands.
package dialect

import (
	"errors"
	"sort"
	"sync"

	"github.com/nikola-chen/sqlparser/identifier"
)

// ErrUnsupported is returned when no dialect is registered under a name.
var ErrUnsupported = errors.New("sqlparser: unsupported dialect")

// Dialect defines the interface for database dialects.
type Dialect interface {
	// Name returns the name of the dialect.
	Name() string
	// QuoteCharacter returns the delimiter pair used when writing quoted names.
	QuoteCharacter() identifier.QuoteCharacter
	// IdentifierQuotes returns the delimiter pairs accepted around names.
	IdentifierQuotes() []identifier.QuoteCharacter
	// QuoteIdent quotes an identifier.
	QuoteIdent(ident string) string
	// Placeholder returns the placeholder string for the n-th argument.
	Placeholder(n int) string
}

var (
	mu       sync.RWMutex
	dialects = map[string]Dialect{}
)

// Register registers a dialect under a name.
func Register(name string, d Dialect) {
	mu.Lock()
	defer mu.Unlock()
	dialects[name] = d
}

// Get returns the dialect registered under name.
func Get(name string) (Dialect, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := dialects[name]
	return d, ok
}

// MustGet returns the dialect for a name or panics if it is not registered.
func MustGet(name string) Dialect {
	d, ok := Get(name)
	if !ok || d == nil {
		panic("sqlparser: unsupported dialect: " + name)
	}
	return d
}

// Names returns every registered name, aliases included, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Accepts reports whether d reads q as an identifier delimiter.
func Accepts(d Dialect, q identifier.QuoteCharacter) bool {
	if q == identifier.None {
		return true
	}
	for _, accepted := range d.IdentifierQuotes() {
		if accepted == q {
			return true
		}
	}
	return false
}
