package engine

import (
	"log"
	"os"
	"time"
	"unicode/utf8"
)

type NopLogger struct{}

func (NopLogger) Printf(format string, args ...any) {}

func StdLogger() Logger {
	return log.New(os.Stderr, "[sqlparser] ", log.LstdFlags)
}

func (e *Engine) log(sql string, dur time.Duration, err error) {
	if e.logger == nil {
		return
	}
	if !e.cfg.LogSQL && (e.cfg.SlowParse <= 0 || dur < e.cfg.SlowParse) {
		return
	}
	e.logger.Printf("dialect=%s sql=%s dur=%s err=%v", e.dialect.Name(), truncateSQL(sql, e.cfg.MaxLogSQLLen), dur, err)
}

func truncateSQL(sql string, maxLen int) string {
	const defaultMax = 2048
	if maxLen <= 0 {
		maxLen = defaultMax
	}
	if len(sql) <= maxLen {
		return sql
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(sql[cut]) {
		cut--
	}
	return sql[:cut] + "…"
}
