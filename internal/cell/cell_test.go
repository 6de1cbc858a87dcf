package cell_test

import (
	"fmt"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/paveg/dataseries/internal/cell"
	"github.com/paveg/dataseries/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

func TestNewAndAs(t *testing.T) {
	c := cell.New(int32(1))

	v, ok := cell.As[int32](c)
	require.True(t, ok)
	assert.Equal(t, int32(1), v)

	_, ok = cell.As[string](c)
	assert.False(t, ok)

	// No numeric widening: int32 is not int64 nor int.
	_, ok = cell.As[int64](c)
	assert.False(t, ok)
	_, ok = cell.As[int](c)
	assert.False(t, ok)
}

func TestNamedTypesAreDistinct(t *testing.T) {
	c := cell.New(celsius(21.5))

	_, ok := cell.As[float64](c)
	assert.False(t, ok)

	v, ok := cell.As[celsius](c)
	require.True(t, ok)
	assert.InDelta(t, 21.5, float64(v), 0.0001)
}

func TestFromAnyRecordsDynamicType(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		typeName string
		rendered string
	}{
		{"int", 1, "int", "1"},
		{"string", "test", "string", `"test"`},
		{"array", [2]float64{1.2, 3.4}, "[2]float64", "[1.2, 3.4]"},
		{"slice", []int{1, 3, 4, 5, 12, 30, 12}, "[]int", "[1, 3, 4, 5, 12, 30, 12]"},
		{"nil", nil, "interface {}", "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cell.FromAny(tt.value)
			assert.Equal(t, tt.typeName, c.Descriptor().Name)
			assert.Equal(t, tt.rendered, c.Format())
			assert.Equal(t, tt.value, c.Any())
		})
	}
}

func TestPtrMutatesInPlace(t *testing.T) {
	for _, c := range []cell.Cell{cell.New(1), cell.FromAny(1)} {
		p, ok := cell.Ptr[int](c)
		require.True(t, ok)
		*p = 100

		v, ok := cell.As[int](c)
		require.True(t, ok)
		assert.Equal(t, 100, v)

		_, ok = cell.Ptr[float32](c)
		assert.False(t, ok)
	}
}

func TestPtrIntoSliceCell(t *testing.T) {
	c := cell.FromAny([]string{"a"})

	p, ok := cell.Ptr[[]string](c)
	require.True(t, ok)
	*p = append(*p, "b")

	v, _ := cell.As[[]string](c)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestSet(t *testing.T) {
	c := cell.New(int32(1))

	require.NoError(t, cell.Set[int32](c, 100))
	v, _ := cell.As[int32](c)
	assert.Equal(t, int32(100), v)

	err := cell.Set[float32](c, 1.1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "requested type float32, slot holds int32")

	// The failed write leaves the slot untouched.
	v, _ = cell.As[int32](c)
	assert.Equal(t, int32(100), v)
}

func TestNilCellReportsAbsence(t *testing.T) {
	var c cell.Cell

	assert.False(t, cell.Is[int](c))
	_, ok := cell.As[int](c)
	assert.False(t, ok)
	_, ok = cell.Ptr[int](c)
	assert.False(t, ok)
	assert.ErrorIs(t, cell.Set(c, 1), errors.ErrTypeMismatch)
}

func TestInterfaceTypedCell(t *testing.T) {
	var s fmt.Stringer
	c := cell.New(s)

	assert.Equal(t, "fmt.Stringer", c.Descriptor().Name)
	_, ok := cell.As[fmt.Stringer](c)
	assert.True(t, ok)
}

func TestDescriptor(t *testing.T) {
	d := cell.Of[int32]()
	assert.Equal(t, "int32", d.String())
	assert.True(t, d.Equal(cell.DescriptorOf(int32(7))))
	assert.False(t, d.Equal(cell.Of[int64]()))
	assert.False(t, d.IsZero())
	assert.True(t, cell.Descriptor{}.IsZero())

	named := cell.Of[celsius]()
	assert.Equal(t, "cell_test.celsius", named.Name)
	assert.Equal(t, "github.com/paveg/dataseries/internal/cell_test.celsius", named.QualifiedName())
	assert.Equal(t, "[]int", cell.Of[[]int]().QualifiedName())
}

func TestDescriptorArrowType(t *testing.T) {
	tests := []struct {
		desc     cell.Descriptor
		expected arrow.DataType
	}{
		{cell.Of[int32](), arrow.PrimitiveTypes.Int32},
		{cell.Of[int64](), arrow.PrimitiveTypes.Int64},
		{cell.Of[float32](), arrow.PrimitiveTypes.Float32},
		{cell.Of[float64](), arrow.PrimitiveTypes.Float64},
		{cell.Of[string](), arrow.BinaryTypes.String},
		{cell.Of[bool](), arrow.FixedWidthTypes.Boolean},
		{cell.Of[[]int](), nil},
		{cell.Of[celsius](), nil},
	}

	for _, tt := range tests {
		t.Run(tt.desc.Name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.desc.ArrowType())
		})
	}
}
