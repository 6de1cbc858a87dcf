// Package memory estimates the heap footprint of stored values.
//
// The figures are approximations derived from reflect type sizes. They are
// meant for metrics and capacity planning, not for exact accounting.
package memory

import (
	"reflect"
	"unsafe"
)

const (
	// mapOverheadBytes approximates the fixed cost of a Go map header and buckets.
	mapOverheadBytes = 48
	// maxDepth bounds recursion through self-referencing pointer graphs.
	maxDepth = 16
)

var stringHeaderSize = int64(unsafe.Sizeof(""))

// EstimateMemoryUsage sums the estimated size of every value. Nil values
// count as zero.
func EstimateMemoryUsage(values ...any) int64 {
	var total int64
	for _, v := range values {
		total += Estimate(v)
	}
	return total
}

// Estimate returns the approximate number of bytes held by v, including the
// backing arrays of strings, slices and maps it references.
func Estimate(v any) int64 {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	return int64(rv.Type().Size()) + indirect(rv, 0)
}

// indirect returns the bytes referenced by rv beyond its own inline size.
func indirect(rv reflect.Value, depth int) int64 {
	if depth > maxDepth {
		return 0
	}

	switch rv.Kind() {
	case reflect.String:
		return int64(rv.Len())
	case reflect.Slice:
		if rv.IsNil() {
			return 0
		}
		total := int64(rv.Cap()) * int64(rv.Type().Elem().Size())
		for i := range rv.Len() {
			total += indirect(rv.Index(i), depth+1)
		}
		return total
	case reflect.Array:
		var total int64
		for i := range rv.Len() {
			total += indirect(rv.Index(i), depth+1)
		}
		return total
	case reflect.Map:
		if rv.IsNil() {
			return 0
		}
		keySize := int64(rv.Type().Key().Size())
		valueSize := int64(rv.Type().Elem().Size())
		total := mapOverheadBytes + int64(rv.Len())*(keySize+valueSize)
		iter := rv.MapRange()
		for iter.Next() {
			total += indirect(iter.Key(), depth+1) + indirect(iter.Value(), depth+1)
		}
		return total
	case reflect.Pointer:
		if rv.IsNil() {
			return 0
		}
		return int64(rv.Type().Elem().Size()) + indirect(rv.Elem(), depth+1)
	case reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		elem := rv.Elem()
		return int64(elem.Type().Size()) + indirect(elem, depth+1)
	case reflect.Struct:
		var total int64
		for i := range rv.NumField() {
			total += indirect(rv.Field(i), depth+1)
		}
		return total
	default:
		return 0
	}
}

// StringHeaderSize is the inline size of a string value.
func StringHeaderSize() int64 {
	return stringHeaderSize
}
