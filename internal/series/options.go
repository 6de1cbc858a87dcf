package series

import (
	"github.com/paveg/dataseries/internal/config"
	"github.com/paveg/dataseries/internal/logging"
	"github.com/paveg/dataseries/internal/monitoring"
)

// Option configures a Series at construction time.
type Option func(*options)

type options struct {
	name     string
	cfg      *config.Config
	logger   *logging.Logger
	metrics  *monitoring.MetricsCollector
	capacity int
}

// WithName sets the name used in log records and String output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithConfig overrides the global configuration for this series.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.cfg = &cfg
	}
}

// WithLogger sets the logger. Without it a logger is derived from the config.
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records structural operations into collector.
func WithMetrics(collector *monitoring.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = collector
	}
}

// WithCapacity pre-sizes storage for n entries, overriding the config.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
