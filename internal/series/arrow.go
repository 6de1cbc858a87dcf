package series

import (
	"reflect"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"golang.org/x/exp/constraints"

	"github.com/paveg/dataseries/internal/cell"
	"github.com/paveg/dataseries/internal/errors"
	"github.com/paveg/dataseries/internal/validation"
)

// appender is the subset of the Arrow builders used here.
type appender[T any] interface {
	Append(v T)
	NewArray() arrow.Array
	Release()
}

// ToArrow materializes the values of a homogeneous series into an Arrow
// array in logical order. Every entry must hold the same primitive type
// (int32, int64, float32, float64, string or bool). The caller owns the
// returned array and must Release it.
func ToArrow[L constraints.Ordered](s *Series[L], mem memory.Allocator) (arrow.Array, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	if err := validation.ValidateNotEmpty(s, "ToArrow"); err != nil {
		return nil, err
	}

	first, _ := s.DescriptorAt(0)
	for i := 1; i < s.Len(); i++ {
		desc, _ := s.DescriptorAt(i)
		if err := validation.ValidateType(first, desc, "ToArrow"); err != nil {
			return nil, err
		}
	}

	// Use type switching to create appropriate Arrow array
	switch first.Type {
	case reflect.TypeFor[int32]():
		return build[int32](s, array.NewInt32Builder(mem)), nil
	case reflect.TypeFor[int64]():
		return build[int64](s, array.NewInt64Builder(mem)), nil
	case reflect.TypeFor[float32]():
		return build[float32](s, array.NewFloat32Builder(mem)), nil
	case reflect.TypeFor[float64]():
		return build[float64](s, array.NewFloat64Builder(mem)), nil
	case reflect.TypeFor[string]():
		return build[string](s, array.NewStringBuilder(mem)), nil
	case reflect.TypeFor[bool]():
		return build[bool](s, array.NewBooleanBuilder(mem)), nil
	default:
		return nil, errors.NewUnsupportedTypeError("ToArrow", first.Name)
	}
}

func build[T any, L constraints.Ordered](s *Series[L], builder appender[T]) arrow.Array {
	defer builder.Release()
	for _, c := range s.All() {
		v, _ := cell.As[T](c)
		builder.Append(v)
	}
	return builder.NewArray()
}
