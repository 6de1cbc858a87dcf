package index_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paveg/dataseries/internal/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorIsMonotonic(t *testing.T) {
	var a index.Allocator
	assert.Equal(t, index.Key(0), a.Peek())

	for i := range 5 {
		assert.Equal(t, index.Key(i), a.Next())
	}
	assert.Equal(t, index.Key(5), a.Peek())
}

func newOrder(labels ...int) *index.Order[int] {
	o := index.NewOrder[int](len(labels))
	for i, l := range labels {
		o.Append(l, index.Key(i))
	}
	return o
}

func TestOrderAppendAndAt(t *testing.T) {
	o := newOrder(4, 1, 3)

	require.Equal(t, 3, o.Len())
	e, ok := o.At(1)
	require.True(t, ok)
	assert.Equal(t, index.Entry[int]{Label: 1, Key: 1}, e)

	_, ok = o.At(3)
	assert.False(t, ok)
	_, ok = o.At(-1)
	assert.False(t, ok)
}

func TestOrderRemoveAtShifts(t *testing.T) {
	o := newOrder(10, 20, 30)

	removed, ok := o.RemoveAt(1)
	require.True(t, ok)
	assert.Equal(t, index.Key(1), removed.Key)

	if diff := cmp.Diff([]index.Key{0, 2}, o.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, o.Position(2))
	assert.Equal(t, -1, o.Position(1))

	_, ok = o.RemoveAt(5)
	assert.False(t, ok)
	assert.Equal(t, 2, o.Len())
}

func TestOrderSort(t *testing.T) {
	o := newOrder(4, 1, 3, 10)
	o.Sort(true)

	if diff := cmp.Diff([]int{1, 3, 4, 10}, o.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]index.Key{1, 2, 0, 3}, o.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	o.SortDesc(false)
	assert.Equal(t, []int{10, 4, 3, 1}, o.Labels())
}

func TestOrderStableSortKeepsTies(t *testing.T) {
	o := newOrder(2, 1, 2, 1)
	o.Sort(true)

	assert.Equal(t, []int{1, 1, 2, 2}, o.Labels())
	assert.Equal(t, []index.Key{1, 3, 0, 2}, o.Keys())
}

func TestOrderCloneIsIndependent(t *testing.T) {
	o := newOrder(3, 2, 1)
	c := o.Clone()
	c.Sort(true)

	assert.Equal(t, []int{3, 2, 1}, o.Labels())
	assert.Equal(t, []int{1, 2, 3}, c.Labels())
}

func TestOrderReset(t *testing.T) {
	o := newOrder(1, 2)
	o.Reset()
	assert.Equal(t, 0, o.Len())
	assert.Empty(t, o.Entries())
}

func TestCompareLabels(t *testing.T) {
	assert.Equal(t, -1, index.CompareLabels("a", "b"))
	assert.Equal(t, 1, index.CompareLabels(2.5, 1.0))
	assert.Equal(t, 0, index.CompareLabels(uint8(7), uint8(7)))

	nan := math.NaN()
	assert.Equal(t, -1, index.CompareLabels(nan, math.Inf(-1)))
	assert.Equal(t, 1, index.CompareLabels(0.0, nan))
	assert.Equal(t, 0, index.CompareLabels(nan, nan))
}
