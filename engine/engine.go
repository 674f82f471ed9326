package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/nikola-chen/sqlparser/builder"
	"github.com/nikola-chen/sqlparser/dialect"
	"github.com/nikola-chen/sqlparser/parser"
	"github.com/nikola-chen/sqlparser/statement"
)

// Logger interface for logging parsed SQL and errors.
type Logger interface {
	Printf(format string, args ...any)
}

// Config defines the configuration for Engine.
type Config struct {
	// LogSQL enables logging of every parse.
	LogSQL bool
	// SlowParse sets the threshold for slow parse logging.
	SlowParse time.Duration
	// MaxLogSQLLen truncates logged SQL. Zero means 2048.
	MaxLogSQLLen int
	// CacheSize bounds the number of cached statements. Zero means 1024,
	// negative disables the cache.
	CacheSize int
	// Parallelism bounds ParseAll. Zero means GOMAXPROCS.
	Parallelism int
}

// Option is a function to configure the Engine.
type Option func(*Engine) error

// WithLogger sets the logger for the Engine.
func WithLogger(logger Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithConfig sets the configuration for the Engine.
func WithConfig(cfg Config) Option {
	return func(e *Engine) error {
		e.cfg = cfg
		return nil
	}
}

// WithRegisterer registers the engine's parse counters with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(e *Engine) error {
		e.registerer = reg
		return nil
	}
}

// Engine is the main entry point for parsing. It is safe for concurrent
// use; cached statements are shared between callers and must not be
// modified.
type Engine struct {
	dialect    dialect.Dialect
	parser     *parser.Parser
	logger     Logger
	cfg        Config
	registerer prometheus.Registerer
	cache      *statementCache
	metrics    *metrics
}

// Open creates an Engine for the dialect registered under dialectName.
func Open(dialectName string, opts ...Option) (*Engine, error) {
	d, ok := dialect.Get(dialectName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", dialect.ErrUnsupported, dialectName)
	}
	return New(d, opts...)
}

// New creates an Engine for d.
func New(d dialect.Dialect, opts ...Option) (*Engine, error) {
	e := &Engine{
		dialect: d,
		parser:  parser.New(d),
		logger:  NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	m, err := newMetrics(e.registerer)
	if err != nil {
		return nil, err
	}
	e.metrics = m
	e.cache = newStatementCache(e.cfg.CacheSize)
	return e, nil
}

// Dialect returns the SQL dialect.
func (e *Engine) Dialect() dialect.Dialect {
	return e.dialect
}

// Parse parses a single statement. Repeated SQL is served from the cache.
func (e *Engine) Parse(sql string) (statement.Statement, error) {
	stmt, hit, err := e.cache.get(e.dialect.Name(), sql, e.parse)
	if hit {
		e.metrics.hits.WithLabelValues(e.dialect.Name()).Inc()
	}
	return stmt, err
}

func (e *Engine) parse(sql string) (statement.Statement, error) {
	start := time.Now()
	stmt, err := e.parser.Parse(sql)
	e.log(sql, time.Since(start), err)
	result := "ok"
	if err != nil {
		result = "error"
	}
	e.metrics.parses.WithLabelValues(e.dialect.Name(), result).Inc()
	return stmt, err
}

// ParseAll parses sqls concurrently and returns the statements in input
// order. It stops at the first error or when ctx is done.
func (e *Engine) ParseAll(ctx context.Context, sqls []string) ([]statement.Statement, error) {
	out := make([]statement.Statement, len(sqls))
	g, gctx := errgroup.WithContext(ctx)
	limit := e.cfg.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for i, sql := range sqls {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			stmt, err := e.Parse(sql)
			if err != nil {
				return fmt.Errorf("statement %d: %w", i, err)
			}
			out[i] = stmt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Convert parses sql and writes it for target, requoting delimited names
// and rewriting parameter markers.
func (e *Engine) Convert(sql string, target dialect.Dialect, opts ...builder.Option) (string, error) {
	stmt, err := e.Parse(sql)
	if err != nil {
		return "", err
	}
	opts = append([]builder.Option{builder.WithDialect(target), builder.WithPlaceholders()}, opts...)
	return builder.Build(stmt, opts...)
}
