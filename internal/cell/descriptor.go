package cell

import (
	"reflect"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/cespare/xxhash/v2"
)

// Descriptor is the runtime type tag recorded for every stored value.
// Two descriptors are equal iff they describe the identical Go type.
type Descriptor struct {
	Type reflect.Type
	Name string
	ID   uint64
}

// Of returns the descriptor of the static type T.
func Of[T any]() Descriptor {
	return describe(reflect.TypeFor[T]())
}

// DescriptorOf returns the descriptor of the dynamic type of v.
// A nil interface is described as the empty interface type.
func DescriptorOf(v any) Descriptor {
	if v == nil {
		return Of[any]()
	}
	return describe(reflect.TypeOf(v))
}

func describe(t reflect.Type) Descriptor {
	name := t.String()
	return Descriptor{
		Type: t,
		Name: name,
		ID:   xxhash.Sum64String(name),
	}
}

// Equal reports whether d and other describe the same type.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.ID == other.ID && d.Type == other.Type
}

// IsZero reports whether d was never initialized.
func (d Descriptor) IsZero() bool {
	return d.Type == nil
}

// String returns the short type name, e.g. "int32" or "main.Point".
func (d Descriptor) String() string {
	return d.Name
}

// QualifiedName returns the type name with the full import path for named
// types ("github.com/x/y.Point"); unnamed types are returned unchanged.
func (d Descriptor) QualifiedName() string {
	if d.Type == nil {
		return d.Name
	}
	if pkg := d.Type.PkgPath(); pkg != "" && d.Type.Name() != "" {
		return pkg + "." + d.Type.Name()
	}
	return d.Name
}

// ArrowType maps primitive descriptors to their Arrow data type.
// It returns nil for types without a columnar equivalent.
func (d Descriptor) ArrowType() arrow.DataType {
	switch d.Type {
	case reflect.TypeFor[int32]():
		return arrow.PrimitiveTypes.Int32
	case reflect.TypeFor[int64]():
		return arrow.PrimitiveTypes.Int64
	case reflect.TypeFor[float32]():
		return arrow.PrimitiveTypes.Float32
	case reflect.TypeFor[float64]():
		return arrow.PrimitiveTypes.Float64
	case reflect.TypeFor[string]():
		return arrow.BinaryTypes.String
	case reflect.TypeFor[bool]():
		return arrow.FixedWidthTypes.Boolean
	default:
		return nil
	}
}
