// Package dataseries provides a heterogeneous, label-indexed single-column
// container. Every entry carries a label, a permanent identity key and a
// value whose type may differ from its neighbours'.
// This package is the sole public API for the library.
package dataseries

import (
	"io"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"golang.org/x/exp/constraints"

	"github.com/paveg/dataseries/internal/cell"
	"github.com/paveg/dataseries/internal/config"
	"github.com/paveg/dataseries/internal/errors"
	"github.com/paveg/dataseries/internal/index"
	"github.com/paveg/dataseries/internal/logging"
	"github.com/paveg/dataseries/internal/monitoring"
	"github.com/paveg/dataseries/internal/series"
)

// Series is a label-indexed column of values of arbitrary types.
type Series[L constraints.Ordered] = series.Series[L]

// Handle is a mutable borrow obtained from GetMut.
type Handle[T any] = series.Handle[T]

// Key is the permanent identity of a stored value.
type Key = index.Key

// Entry pairs a label with the key of its value.
type Entry[L constraints.Ordered] = index.Entry[L]

// Cell is a type-erased stored value.
type Cell = cell.Cell

// Descriptor is the runtime type tag recorded for each value.
type Descriptor = cell.Descriptor

// Option configures a Series at construction time.
type Option = series.Option

// Config holds library-wide settings.
type Config = config.Config

// Logger is the structured logger series write to.
type Logger = logging.Logger

// MetricsCollector records timing and allocation of series operations.
type MetricsCollector = monitoring.MetricsCollector

// Error is the error type returned by Series operations.
type Error = errors.SeriesError

// Sentinel errors, for use with errors.Is.
var (
	ErrIndexOutOfBounds = errors.ErrIndexOutOfBounds
	ErrTypeMismatch     = errors.ErrTypeMismatch
	ErrStaleHandle      = errors.ErrStaleHandle
	ErrEmptySeries      = errors.ErrEmptySeries
	ErrUnsupportedType  = errors.ErrUnsupportedType
)

// New creates an empty Series with label type L.
//
// Example:
//
//	s := dataseries.New[int]()
//	s.Push(4, int32(1))
//	s.Push(1, "test")
//	s.Sort()
//	_ = s.Print(os.Stdout)
func New[L constraints.Ordered](opts ...Option) *Series[L] {
	return series.New[L](opts...)
}

// WithName names the series in log records and String output.
func WithName(name string) Option { return series.WithName(name) }

// WithConfig overrides the global configuration for one series.
func WithConfig(cfg Config) Option { return series.WithConfig(cfg) }

// WithLogger routes the series' log records to logger.
func WithLogger(logger *logging.Logger) Option { return series.WithLogger(logger) }

// WithMetrics records structural operations into collector.
func WithMetrics(collector *monitoring.MetricsCollector) Option {
	return series.WithMetrics(collector)
}

// NewTextLogger returns a logger writing text records at level or above to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return logging.NewTextLogger(w, level)
}

// NewMetricsCollector returns an enabled collector for use with WithMetrics.
func NewMetricsCollector() *MetricsCollector {
	return monitoring.NewMetricsCollector(true)
}

// WithCapacity pre-sizes storage for n entries.
func WithCapacity(n int) Option { return series.WithCapacity(n) }

// Push appends value under label, recording its static type T. The method
// Series.Push records the dynamic type instead.
func Push[T any, L constraints.Ordered](s *Series[L], label L, value T) Key {
	return series.Push(s, label, value)
}

// Get returns a copy of the value at position i if it is stored as exactly T.
func Get[T any, L constraints.Ordered](s *Series[L], i int) (T, bool) {
	return series.Get[T](s, i)
}

// GetMut borrows the value at position i for in-place mutation.
func GetMut[T any, L constraints.Ordered](s *Series[L], i int) (*Handle[T], bool) {
	return series.GetMut[T](s, i)
}

// Update overwrites the value at position i. The slot must already hold a T.
func Update[T any, L constraints.Ordered](s *Series[L], i int, value T) error {
	return series.Update(s, i, value)
}

// MustUpdate is like Update but panics on failure.
func MustUpdate[T any, L constraints.Ordered](s *Series[L], i int, value T) {
	series.MustUpdate(s, i, value)
}

// As extracts a T from a cell, for example one returned by Series.Remove.
func As[T any](c Cell) (T, bool) {
	return cell.As[T](c)
}

// TypeOf returns the descriptor of T, for comparison with DescriptorAt.
func TypeOf[T any]() Descriptor {
	return cell.Of[T]()
}

// SortNatural orders a string-labelled series with numbers compared by value.
func SortNatural[L ~string](s *Series[L]) {
	series.SortNatural(s)
}

// ToArrow materializes a homogeneous primitive series as an Arrow array.
// The caller must Release the result.
func ToArrow[L constraints.Ordered](s *Series[L], mem memory.Allocator) (arrow.Array, error) {
	return series.ToArrow(s, mem)
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return config.NewConfig()
}

// LoadConfig reads a YAML or JSON configuration file.
func LoadConfig(path string) (Config, error) {
	return config.LoadFromFile(path)
}

// SetGlobalConfig changes the configuration used by series created without
// WithConfig.
func SetGlobalConfig(cfg Config) {
	config.SetGlobalConfig(cfg)
}
