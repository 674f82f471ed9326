package engine

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	parses *prometheus.CounterVec
	hits   *prometheus.CounterVec
}

// newMetrics creates the engine counters and registers them with reg when
// it is not nil. Engines sharing a registerer share the counters.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sqlparser_parse_total",
			Help: "Number of statements parsed, by dialect and result.",
		}, []string{"dialect", "result"}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sqlparser_cache_hits_total",
			Help: "Number of parses served from the statement cache.",
		}, []string{"dialect"}),
	}
	if reg == nil {
		return m, nil
	}
	var err error
	if m.parses, err = register(reg, m.parses); err != nil {
		return nil, err
	}
	if m.hits, err = register(reg, m.hits); err != nil {
		return nil, err
	}
	return m, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}
