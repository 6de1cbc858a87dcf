package series

import (
	"golang.org/x/exp/constraints"

	"github.com/paveg/dataseries/internal/cell"
	"github.com/paveg/dataseries/internal/common"
	"github.com/paveg/dataseries/internal/errors"
	"github.com/paveg/dataseries/internal/index"
	"github.com/paveg/dataseries/internal/validation"
)

// Get returns a copy of the value at logical position i if it is stored as
// exactly T. An out-of-range position and a type mismatch both report false.
func Get[T any, L constraints.Ordered](s *Series[L], i int) (T, bool) {
	_, c, ok := s.resolve(i)
	if !ok {
		var zero T
		return zero, false
	}
	return cell.As[T](c)
}

// Handle is a mutable borrow of one stored value. It stays usable only
// until the next structural mutation of its series (Push, Remove, Sort,
// Update, Clear); after that every accessor panics with ErrStaleHandle.
type Handle[T any] struct {
	live *uint64
	gen  uint64
	key  index.Key
	ptr  *T
}

// GetMut returns a handle to the value at logical position i if it is
// stored as exactly T. Absence is reported the same way as in Get.
func GetMut[T any, L constraints.Ordered](s *Series[L], i int) (*Handle[T], bool) {
	e, c, ok := s.resolve(i)
	if !ok {
		return nil, false
	}
	p, ok := cell.Ptr[T](c)
	if !ok {
		return nil, false
	}
	return &Handle[T]{
		live: &s.generation,
		gen:  s.generation,
		key:  e.Key,
		ptr:  p,
	}, true
}

// Valid reports whether the handle may still be used.
func (h *Handle[T]) Valid() bool {
	return h != nil && h.live != nil && *h.live == h.gen
}

// Key returns the identity key of the borrowed cell.
func (h *Handle[T]) Key() index.Key {
	return h.key
}

// Get returns the current value.
func (h *Handle[T]) Get() T {
	h.mustBeValid("Handle.Get")
	return *h.ptr
}

// Set overwrites the value in place.
func (h *Handle[T]) Set(value T) {
	h.mustBeValid("Handle.Set")
	*h.ptr = value
}

// Ptr exposes the borrowed storage directly. The pointer must not be kept
// beyond the handle's validity.
func (h *Handle[T]) Ptr() *T {
	h.mustBeValid("Handle.Ptr")
	return h.ptr
}

func (h *Handle[T]) mustBeValid(op string) {
	if !h.Valid() {
		panic(errors.NewStaleHandleError(op))
	}
}

// Update overwrites the value at logical position i with value.
//
// The slot must already hold a T. Anything else is a contract violation:
// Update then returns an error wrapping ErrTypeMismatch and leaves the slot
// untouched. An out-of-range position returns an error wrapping
// ErrIndexOutOfBounds.
func Update[T any, L constraints.Ordered](s *Series[L], i int, value T) error {
	return s.record("Update", 1, func() error {
		if err := validation.ValidateIndex(i, s.order.Len(), "Update"); err != nil {
			return err
		}
		e, c, _ := s.resolve(i)

		want := cell.Of[T]()
		if err := validation.ValidateType(want, c.Descriptor(), "Update"); err != nil {
			if serr, ok := err.(*errors.SeriesError); ok {
				err = serr.WithLabel(common.FormatValue(e.Label))
			}
			s.logger.Warn("contract violation", "op", "Update", "label", e.Label,
				"key", uint64(e.Key), "error", err)
			return err
		}

		if err := cell.Set(c, value); err != nil {
			return errors.NewInternalError("Update", err)
		}
		s.descriptors.Put(e.Key, want)
		s.generation++
		return nil
	})
}

// MustUpdate is like Update but panics on any failure. Use it where a wrong
// type is a programming error that must halt execution.
func MustUpdate[T any, L constraints.Ordered](s *Series[L], i int, value T) {
	if err := Update(s, i, value); err != nil {
		panic(err)
	}
}
