// Package cell implements the type-erased value cell used by series storage.
//
// A Cell holds exactly one value together with the Descriptor of the type
// it was stored as. The original type is recovered only through an exact
// type check (As, Ptr); there is no conversion between types.
package cell

import (
	"reflect"

	"github.com/paveg/dataseries/internal/common"
	"github.com/paveg/dataseries/internal/errors"
)

// Cell is a type-erased slot. The interface is closed: only this package
// provides implementations.
type Cell interface {
	// Descriptor returns the type tag recorded at creation.
	Descriptor() Descriptor
	// Any returns a copy of the stored value as an interface.
	Any() any
	// Format returns the debug rendering of the stored value.
	Format() string

	// ptr returns a *T pointing into the cell's own storage, as any.
	ptr() any
}

// typed stores a value whose type is known at compile time.
type typed[T any] struct {
	desc Descriptor
	v    T
}

func (c *typed[T]) Descriptor() Descriptor { return c.desc }
func (c *typed[T]) Any() any               { return c.v }
func (c *typed[T]) Format() string         { return common.FormatValue(c.v) }
func (c *typed[T]) ptr() any               { return &c.v }

// boxed stores a value whose type is only known at runtime. The value lives
// in an addressable reflect.Value so it can still be handed out by pointer.
type boxed struct {
	desc Descriptor
	rv   reflect.Value
}

func (c *boxed) Descriptor() Descriptor { return c.desc }
func (c *boxed) Any() any               { return c.rv.Interface() }
func (c *boxed) Format() string         { return common.FormatValue(c.rv.Interface()) }
func (c *boxed) ptr() any               { return c.rv.Addr().Interface() }

// New wraps v, recording T as its type.
func New[T any](v T) Cell {
	return &typed[T]{desc: Of[T](), v: v}
}

// FromAny wraps v, recording its dynamic type. A nil v is stored as a nil
// empty interface.
func FromAny(v any) Cell {
	if v == nil {
		return New[any](nil)
	}
	rv := reflect.New(reflect.TypeOf(v)).Elem()
	rv.Set(reflect.ValueOf(v))
	return &boxed{desc: DescriptorOf(v), rv: rv}
}

// Is reports whether c holds a value of exactly type T.
func Is[T any](c Cell) bool {
	if c == nil {
		return false
	}
	return c.Descriptor().Equal(Of[T]())
}

// As returns the stored value if its type is exactly T.
func As[T any](c Cell) (T, bool) {
	p, ok := Ptr[T](c)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Ptr returns a pointer into the cell's storage if its type is exactly T.
// Writes through the pointer change the stored value.
func Ptr[T any](c Cell) (*T, bool) {
	if !Is[T](c) {
		return nil, false
	}
	p, ok := c.ptr().(*T)
	return p, ok
}

// Set overwrites the stored value in place. It fails with a type mismatch
// error when the cell does not hold a T.
func Set[T any](c Cell, v T) error {
	p, ok := Ptr[T](c)
	if !ok {
		got := "<nil>"
		if c != nil {
			got = c.Descriptor().Name
		}
		return errors.NewTypeMismatchError("Set", Of[T]().Name, got)
	}
	*p = v
	return nil
}
