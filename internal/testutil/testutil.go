// Package testutil provides common testing utilities to reduce code duplication
// across test files in the dataseries module.
//
// This package consolidates:
// - Memory allocator setup for Arrow materialization tests
// - The reference series fixtures used throughout the suite
// - Storage invariant assertions
package testutil

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/paveg/dataseries/internal/config"
	"github.com/paveg/dataseries/internal/index"
	"github.com/paveg/dataseries/internal/logging"
	"github.com/paveg/dataseries/internal/series"
)

// TestMemoryContext provides a checked allocator that reports leaks on Release.
type TestMemoryContext struct {
	Allocator *memory.CheckedAllocator
	tb        testing.TB
}

// Release asserts that every Arrow buffer allocated through the context was freed.
func (tmc *TestMemoryContext) Release() {
	tmc.Allocator.AssertSize(tmc.tb, 0)
}

// SetupMemoryTest creates a checked memory allocator for tests.
//
// Example usage:
//
//	mem := testutil.SetupMemoryTest(t)
//	defer mem.Release()
func SetupMemoryTest(tb testing.TB) *TestMemoryContext {
	tb.Helper()
	return &TestMemoryContext{
		Allocator: memory.NewCheckedAllocator(memory.NewGoAllocator()),
		tb:        tb,
	}
}

// Options returns series options suitable for tests: default config with a
// silent logger, independent of whatever global config other tests set.
func Options() []series.Option {
	return []series.Option{
		series.WithConfig(config.NewConfig()),
		series.WithLogger(logging.NoopLogger()),
	}
}

// NewItemSeries creates a string-labelled series holding values under the
// labels "Item 1", "Item 2", ...
func NewItemSeries(tb testing.TB, values ...any) *series.Series[string] {
	tb.Helper()
	s := series.New[string](Options()...)
	for i, v := range values {
		s.Push(itemLabel(i+1), v)
	}
	return s
}

func itemLabel(n int) string {
	return "Item " + strconv.Itoa(n)
}

// ReferenceValues are the heterogeneous values of the reference fixture.
var ReferenceValues = []any{
	int32(1),
	"test",
	[2]float64{1.2, 3.4},
	[]int32{1, 3, 4, 5, 12, 30, 12},
}

// ReferenceLabels are the integer labels of the reference fixture, in push order.
var ReferenceLabels = []int{4, 1, 3, 10}

// NewReferenceSeries pushes ReferenceValues under ReferenceLabels, in order.
func NewReferenceSeries(tb testing.TB, opts ...series.Option) *series.Series[int] {
	tb.Helper()
	s := series.New[int](append(Options(), opts...)...)
	for i, label := range ReferenceLabels {
		s.Push(label, ReferenceValues[i])
	}
	return s
}

// AssertParity checks that order entries, cells and descriptors agree.
func AssertParity[L constraints.Ordered](tb testing.TB, s *series.Series[L]) {
	tb.Helper()
	require.NoError(tb, s.Check())
	assert.Equal(tb, s.Len(), s.StoredLen(), "order and cell counts should match")
	assert.Equal(tb, s.Len(), s.DescriptorLen(), "order and descriptor counts should match")
}

// AssertCounts checks entry count and the key counter in one call.
func AssertCounts[L constraints.Ordered](tb testing.TB, s *series.Series[L], entries int, next index.Key) {
	tb.Helper()
	AssertParity(tb, s)
	assert.Equal(tb, entries, s.Len(), "entry count")
	assert.Equal(tb, next, s.NextKey(), "next key")
}

// PrintLines renders s with Print (or PrintReverse) and returns the lines.
func PrintLines[L constraints.Ordered](tb testing.TB, s *series.Series[L], reverse bool) []string {
	tb.Helper()
	var buf bytes.Buffer
	if reverse {
		require.NoError(tb, s.PrintReverse(&buf))
	} else {
		require.NoError(tb, s.Print(&buf))
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
