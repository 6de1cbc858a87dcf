// Package common provides shared utilities for rendering stored values and labels
package common

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// ValueFormatter renders arbitrary values in a debug form that does not
// depend on knowing their static type.
//
// Scalars print as with %v, strings are quoted, arrays and slices print
// element-wise as [a, b, c]. Composite values (structs, maps, pointers)
// are delegated to go-spew so nested pointers are followed; pointers
// render as <*> without their address, keeping output deterministic.
type ValueFormatter struct {
	dumper *spew.ConfigState
}

// NewValueFormatter creates a new ValueFormatter instance.
func NewValueFormatter() *ValueFormatter {
	return &ValueFormatter{
		dumper: &spew.ConfigState{
			Indent:                  " ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			DisableMethods:          false,
			SortKeys:                true,
		},
	}
}

// Format returns the debug rendering of value.
func (vf *ValueFormatter) Format(value any) string {
	if value == nil {
		return "<nil>"
	}
	return vf.format(reflect.ValueOf(value))
}

func (vf *ValueFormatter) format(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Invalid:
		return "<nil>"
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(rv.Interface())
	case reflect.Array, reflect.Slice:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "[]"
		}
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = vf.format(rv.Index(i))
		}
		return FormatList(items)
	case reflect.Interface:
		if rv.IsNil() {
			return "<nil>"
		}
		return vf.format(rv.Elem())
	default:
		// The + flag would turn pointer addresses back on.
		return vf.dumper.Sprintf("%v", rv.Interface())
	}
}

// FormatList formats already rendered items as a bracketed list.
// Pattern: [item1, item2, ...].
func (vf *ValueFormatter) FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// FormatEntry formats one series entry line without a trailing newline.
// Pattern: label  type: value.
func (vf *ValueFormatter) FormatEntry(label, typeName, value string) string {
	return fmt.Sprintf("%s  %s: %s", label, typeName, value)
}

// Default formatter instance for convenience.
var defaultFormatter = NewValueFormatter()

// FormatValue renders value using the default formatter.
func FormatValue(value any) string {
	return defaultFormatter.Format(value)
}

// FormatList formats a bracketed list using the default formatter.
func FormatList(items []string) string {
	return defaultFormatter.FormatList(items)
}

// FormatEntry formats one series entry line using the default formatter.
func FormatEntry(label, typeName, value string) string {
	return defaultFormatter.FormatEntry(label, typeName, value)
}
