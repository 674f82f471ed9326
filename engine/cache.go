package engine

import (
	"sync"
	"sync/atomic"

	"github.com/zeebo/blake3"
	"golang.org/x/sync/singleflight"

	"github.com/nikola-chen/sqlparser/statement"
)

const defaultCacheSize = 1024

// statementCache maps (dialect, sql) to parsed statements. Concurrent
// misses for the same key run the parse once. Failed parses are not cached.
type statementCache struct {
	max     int64
	entries sync.Map // [32]byte -> statement.Statement
	count   atomic.Int64
	group   singleflight.Group
	mu      sync.Mutex // serializes store
}

func newStatementCache(size int) *statementCache {
	if size == 0 {
		size = defaultCacheSize
	}
	return &statementCache{max: int64(size)}
}

func cacheKey(dialectName, sql string) [32]byte {
	return blake3.Sum256([]byte(dialectName + "\x00" + sql))
}

// get returns the cached statement for sql or parses it. hit reports
// whether the statement came from the cache.
func (c *statementCache) get(dialectName, sql string, parse func(string) (statement.Statement, error)) (stmt statement.Statement, hit bool, err error) {
	if c.max < 0 {
		stmt, err = parse(sql)
		return stmt, false, err
	}

	key := cacheKey(dialectName, sql)
	if v, ok := c.entries.Load(key); ok {
		return v.(statement.Statement), true, nil
	}

	v, err, _ := c.group.Do(string(key[:]), func() (any, error) {
		if v, ok := c.entries.Load(key); ok {
			return v, nil
		}
		stmt, err := parse(sql)
		if err != nil {
			return nil, err
		}
		c.store(key, stmt)
		return stmt, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(statement.Statement), false, nil
}

func (c *statementCache) store(key [32]byte, stmt statement.Statement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, loaded := c.entries.LoadOrStore(key, stmt); loaded {
		return
	}
	if c.count.Add(1) <= c.max {
		return
	}
	// Over the bound: drop everything but the new entry.
	c.entries.Range(func(k, _ any) bool {
		if k == key {
			return true
		}
		if _, ok := c.entries.LoadAndDelete(k); ok {
			c.count.Add(-1)
		}
		return true
	})
}

func (c *statementCache) len() int {
	return int(c.count.Load())
}
