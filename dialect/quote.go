package dialect

import (
	"strings"
	"sync"

	"github.com/nikola-chen/sqlparser/identifier"
)

// maxQuoteCacheSize limits each cache to prevent unbounded growth.
const maxQuoteCacheSize = 2048

// quoter wraps identifiers in one delimiter pair, doubling any closing
// delimiter found inside. Results for short identifiers are cached.
type quoter struct {
	q     identifier.QuoteCharacter
	cache sync.Map
	size  int64
	mu    sync.Mutex
}

func newQuoter(q identifier.QuoteCharacter) *quoter {
	return &quoter{q: q}
}

func (qt *quoter) quote(ident string) string {
	start, end := qt.q.StartDelimiter(), qt.q.EndDelimiter()
	if ident == "" {
		return start + end
	}

	// Check cache first
	if cached, ok := qt.cache.Load(ident); ok {
		return cached.(string)
	}

	// Fast path: no closing delimiter in ident
	if !strings.Contains(ident, end) {
		result := start + ident + end
		if len(ident) <= 64 {
			qt.store(ident, result)
		}
		return result
	}

	var result strings.Builder
	result.Grow(len(ident) + 4)
	result.WriteString(start)
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c == end[0] {
			result.WriteByte(c)
		}
		result.WriteByte(c)
	}
	result.WriteString(end)
	return result.String()
}

func (qt *quoter) store(ident, quoted string) {
	qt.mu.Lock()
	defer qt.mu.Unlock()
	if qt.size >= maxQuoteCacheSize {
		return
	}
	if _, loaded := qt.cache.LoadOrStore(ident, quoted); !loaded {
		qt.size++
	}
}
