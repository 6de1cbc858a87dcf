// Package series implements a single-column, label-indexed container whose
// values may each have a different type.
//
// Storage is split in two: cells live in a map keyed by a permanent identity
// key, while an ordered sequence of (label, key) entries defines the logical
// position of every value. Sorting permutes only that sequence, so keys and
// cells are never moved by a re-order.
//
// A Series is not safe for concurrent use. Readers may share one as long as
// no goroutine mutates it; mutation requires exclusive access.
package series

import (
	"iter"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/kamstrup/intmap"
	"golang.org/x/exp/constraints"

	"github.com/paveg/dataseries/internal/cell"
	"github.com/paveg/dataseries/internal/common"
	"github.com/paveg/dataseries/internal/config"
	"github.com/paveg/dataseries/internal/errors"
	"github.com/paveg/dataseries/internal/index"
	"github.com/paveg/dataseries/internal/logging"
	"github.com/paveg/dataseries/internal/memory"
	"github.com/paveg/dataseries/internal/monitoring"
	"github.com/paveg/dataseries/internal/validation"
)

// Series is a heterogeneously typed, label-indexed column.
// L is the label type shared by every entry.
type Series[L constraints.Ordered] struct {
	name        string
	cells       *intmap.Map[index.Key, cell.Cell]
	descriptors *intmap.Map[index.Key, cell.Descriptor]
	order       *index.Order[L]
	keys        index.Allocator

	// generation changes on every structural mutation; handles from
	// GetMut compare against it to detect that they outlived a mutation.
	generation uint64

	cfg     config.Config
	logger  *logging.Logger
	metrics *monitoring.MetricsCollector
}

// New creates an empty Series. Unless overridden by options it uses the
// global configuration.
func New[L constraints.Ordered](opts ...Option) *Series[L] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := config.GetGlobalConfig()
	if o.cfg != nil {
		cfg = *o.cfg
	}
	cfg = cfg.WithDefaults()

	capacity := cfg.InitialCapacity
	if o.capacity > 0 {
		capacity = o.capacity
	}

	logger := o.logger
	if logger == nil {
		logger = logging.FromConfig(cfg, nil)
	}
	if o.name != "" {
		logger = logger.WithSeries(o.name)
	}

	metrics := o.metrics
	if metrics == nil && cfg.MetricsCollection {
		metrics = monitoring.EnableGlobalMonitoring()
	}

	return &Series[L]{
		name:        o.name,
		cells:       intmap.New[index.Key, cell.Cell](capacity),
		descriptors: intmap.New[index.Key, cell.Descriptor](capacity),
		order:       index.NewOrder[L](capacity),
		cfg:         cfg,
		logger:      logger,
		metrics:     metrics,
	}
}

// Name returns the series name, possibly empty.
func (s *Series[L]) Name() string {
	return s.name
}

// Len returns the number of entries in the logical sequence.
func (s *Series[L]) Len() int {
	return s.order.Len()
}

// StoredLen returns the number of stored cells.
func (s *Series[L]) StoredLen() int {
	return s.cells.Len()
}

// DescriptorLen returns the number of recorded type descriptors.
func (s *Series[L]) DescriptorLen() int {
	return s.descriptors.Len()
}

// NextKey returns the key the next Push will allocate. It equals the number
// of pushes performed so far and never decreases.
func (s *Series[L]) NextKey() index.Key {
	return s.keys.Peek()
}

// Push appends value under label and returns its identity key. The value's
// dynamic type is recorded; use the package-level Push to record the static
// type instead.
func (s *Series[L]) Push(label L, value any) index.Key {
	return s.insert(label, cell.FromAny(value))
}

// Push appends value under label, recording T as its type.
func Push[T any, L constraints.Ordered](s *Series[L], label L, value T) index.Key {
	return s.insert(label, cell.New(value))
}

func (s *Series[L]) insert(label L, c cell.Cell) index.Key {
	var key index.Key
	_ = s.record("Push", 1, func() error {
		key = s.keys.Next()
		s.order.Append(label, key)
		s.cells.Put(key, c)
		s.descriptors.Put(key, c.Descriptor())
		s.generation++
		return nil
	})

	s.logger.Debug("push", "label", label, "key", uint64(key), "type", c.Descriptor().Name)
	return key
}

// resolve maps a logical position to its entry and cell.
func (s *Series[L]) resolve(i int) (index.Entry[L], cell.Cell, bool) {
	e, ok := s.order.At(i)
	if !ok {
		return e, nil, false
	}
	c, ok := s.cells.Get(e.Key)
	return e, c, ok
}

// KeyAt returns the identity key at logical position i.
func (s *Series[L]) KeyAt(i int) (index.Key, bool) {
	e, ok := s.order.At(i)
	return e.Key, ok
}

// LabelAt returns the label at logical position i.
func (s *Series[L]) LabelAt(i int) (L, bool) {
	e, ok := s.order.At(i)
	return e.Label, ok
}

// DescriptorAt returns the recorded type descriptor at logical position i.
func (s *Series[L]) DescriptorAt(i int) (cell.Descriptor, bool) {
	e, ok := s.order.At(i)
	if !ok {
		return cell.Descriptor{}, false
	}
	return s.descriptors.Get(e.Key)
}

// CellAt returns the type-erased cell at logical position i.
func (s *Series[L]) CellAt(i int) (cell.Cell, bool) {
	_, c, ok := s.resolve(i)
	return c, ok
}

// Labels returns the labels in logical order.
func (s *Series[L]) Labels() []L {
	return s.order.Labels()
}

// Keys returns the identity keys in logical order.
func (s *Series[L]) Keys() []index.Key {
	return s.order.Keys()
}

// All iterates over entries and their cells in logical order.
func (s *Series[L]) All() iter.Seq2[index.Entry[L], cell.Cell] {
	return func(yield func(index.Entry[L], cell.Cell) bool) {
		for _, e := range s.order.Entries() {
			c, ok := s.cells.Get(e.Key)
			if !ok {
				continue
			}
			if !yield(e, c) {
				return
			}
		}
	}
}

// Remove deletes the entry at logical position i together with its cell and
// descriptor. Later entries shift down by one; keys are untouched and the
// key counter is not rewound. The removed cell is returned so the caller can
// still extract its value.
func (s *Series[L]) Remove(i int) (cell.Cell, bool) {
	var (
		removed cell.Cell
		entry   index.Entry[L]
	)
	_ = s.record("Remove", 1, func() error {
		e, ok := s.order.RemoveAt(i)
		if !ok {
			return nil
		}
		entry = e
		removed, _ = s.cells.Get(e.Key)
		s.cells.Del(e.Key)
		s.descriptors.Del(e.Key)
		s.generation++
		return nil
	})

	if removed == nil {
		return nil, false
	}
	s.logger.Debug("remove", "label", entry.Label, "key", uint64(entry.Key), "position", i)
	return removed, true
}

// Clear removes every entry. The key counter keeps its value.
func (s *Series[L]) Clear() {
	n := s.order.Len()
	_ = s.record("Clear", n, func() error {
		s.order.Reset()
		s.cells.Clear()
		s.descriptors.Clear()
		s.generation++
		return nil
	})
	s.logger.Debug("clear", "entries", n)
}

// Sort orders the logical sequence by ascending label. Cells, descriptors
// and keys are not touched. Whether equal labels keep their relative order
// depends on the StableSort setting.
func (s *Series[L]) Sort() {
	s.SortFunc(index.CompareLabels[L])
}

// SortDesc orders the logical sequence by descending label.
func (s *Series[L]) SortDesc() {
	s.SortFunc(func(a, b L) int { return index.CompareLabels(b, a) })
}

// SortFunc orders the logical sequence using cmp on labels.
func (s *Series[L]) SortFunc(cmp func(a, b L) int) {
	n := s.order.Len()
	_ = s.record("Sort", n, func() error {
		s.order.SortFunc(cmp, s.cfg.StableSort)
		s.generation++
		return nil
	})
	s.logger.Debug("sort", "entries", n, "stable", s.cfg.StableSort)
}

// Check verifies the storage invariants: the order sequence, cell map and
// descriptor map have equal sizes, every ordered key was issued by the
// allocator, and every ordered key is stored exactly once.
func (s *Series[L]) Check() error {
	entries := s.order.Entries()
	next := int(s.keys.Peek())

	validators := make([]validation.Validator, 0, len(entries)+1)
	validators = append(validators, validation.NewParityValidator(s.order.Len(), s.cells.Len(), s.descriptors.Len(), "Check"))
	for _, e := range entries {
		validators = append(validators, validation.NewIndexValidator(int(e.Key), next, "Check"))
	}
	if err := validation.NewCompoundValidator(validators...).Validate(); err != nil {
		return err
	}

	seen := make(map[index.Key]struct{}, len(entries))
	for _, e := range entries {
		label := common.FormatValue(e.Label)
		if _, dup := seen[e.Key]; dup {
			return errors.NewValidationError("Check", label, "key "+strconv.FormatUint(uint64(e.Key), 10)+" appears twice")
		}
		seen[e.Key] = struct{}{}
		_, hasCell := s.cells.Get(e.Key)
		_, hasDesc := s.descriptors.Get(e.Key)
		if !hasCell || !hasDesc {
			return errors.NewValidationError("Check", label, "dangling key "+strconv.FormatUint(uint64(e.Key), 10))
		}
	}
	return nil
}

// PositionOf returns the current logical position of the entry with key.
func (s *Series[L]) PositionOf(key index.Key) (int, bool) {
	i := s.order.Position(key)
	return i, i >= 0
}

// Fingerprint hashes the rendered entries in logical order. Two series with
// the same labels, types and values in the same order share a fingerprint.
func (s *Series[L]) Fingerprint() uint64 {
	h := xxhash.New()
	for e, c := range s.All() {
		desc, _ := s.descriptors.Get(e.Key)
		_, _ = h.WriteString(common.FormatValue(e.Label))
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(desc.Name)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(c.Format())
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// MemoryUsage estimates the bytes held by the stored values and their
// order entries.
func (s *Series[L]) MemoryUsage() int64 {
	var total int64
	for e, c := range s.All() {
		total += memory.Estimate(e) + memory.Estimate(c.Any())
	}
	return total
}

func (s *Series[L]) record(op string, entries int, fn func() error) error {
	if s.metrics == nil {
		return fn()
	}
	return s.metrics.RecordOperation(op, entries, fn)
}
