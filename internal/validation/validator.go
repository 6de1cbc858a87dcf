// Package validation provides input validation utilities for Series operations.
// Validators are small, composable checks for index bounds, stored type
// agreement, storage parity and emptiness, each reporting a SeriesError.
package validation

import (
	"fmt"

	"github.com/paveg/dataseries/internal/cell"
	"github.com/paveg/dataseries/internal/errors"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// LengthProvider interface for types that report a logical length
type LengthProvider interface {
	Len() int
}

// IndexValidator validates index bounds
type IndexValidator struct {
	index  int
	length int
	op     string
}

// NewIndexValidator creates a validator for index operations
func NewIndexValidator(index, length int, op string) *IndexValidator {
	return &IndexValidator{
		index:  index,
		length: length,
		op:     op,
	}
}

// Validate checks if index is within [0, length)
func (v *IndexValidator) Validate() error {
	if v.index < 0 || v.index >= v.length {
		return errors.NewIndexOutOfBoundsError(v.op, v.index, v.length)
	}
	return nil
}

// TypeValidator validates that a stored descriptor matches the requested one
type TypeValidator struct {
	want cell.Descriptor
	got  cell.Descriptor
	op   string
}

// NewTypeValidator creates a validator for typed access
func NewTypeValidator(want, got cell.Descriptor, op string) *TypeValidator {
	return &TypeValidator{
		want: want,
		got:  got,
		op:   op,
	}
}

// Validate checks that both descriptors name the identical type
func (v *TypeValidator) Validate() error {
	if !v.want.Equal(v.got) {
		return errors.NewTypeMismatchError(v.op, v.want.Name, v.got.Name)
	}
	return nil
}

// ParityValidator validates that the order sequence, the cell map and the
// descriptor map all hold the same number of entries
type ParityValidator struct {
	order       int
	cells       int
	descriptors int
	op          string
}

// NewParityValidator creates a validator for storage parity
func NewParityValidator(order, cells, descriptors int, op string) *ParityValidator {
	return &ParityValidator{
		order:       order,
		cells:       cells,
		descriptors: descriptors,
		op:          op,
	}
}

// Validate checks if all three lengths match
func (v *ParityValidator) Validate() error {
	if v.order != v.cells || v.order != v.descriptors {
		return &errors.SeriesError{
			Op: v.op,
			Message: fmt.Sprintf("order has %d entries, storage %d cells and %d descriptors",
				v.order, v.cells, v.descriptors),
			Cause: errors.ErrMismatchedLength,
		}
	}
	return nil
}

// EmptySeriesValidator validates operations on empty Series
type EmptySeriesValidator struct {
	series LengthProvider
	op     string
}

// NewEmptySeriesValidator creates a validator for empty Series checks
func NewEmptySeriesValidator(series LengthProvider, op string) *EmptySeriesValidator {
	return &EmptySeriesValidator{
		series: series,
		op:     op,
	}
}

// Validate checks if the Series is empty when the operation requires data
func (v *EmptySeriesValidator) Validate() error {
	if v.series.Len() == 0 {
		return &errors.SeriesError{
			Op:      v.op,
			Message: "operation not supported on empty Series",
			Cause:   errors.ErrEmptySeries,
		}
	}
	return nil
}

// CompoundValidator combines multiple validators
type CompoundValidator struct {
	validators []Validator
}

// NewCompoundValidator creates a validator that checks multiple conditions
func NewCompoundValidator(validators ...Validator) *CompoundValidator {
	return &CompoundValidator{
		validators: validators,
	}
}

// Validate runs all validators and returns the first error encountered
func (v *CompoundValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Convenience validation functions

// ValidateIndex is a convenience function for index validation
func ValidateIndex(index, length int, op string) error {
	return NewIndexValidator(index, length, op).Validate()
}

// ValidateType is a convenience function for type validation
func ValidateType(want, got cell.Descriptor, op string) error {
	return NewTypeValidator(want, got, op).Validate()
}

// ValidateParity is a convenience function for storage parity validation
func ValidateParity(order, cells, descriptors int, op string) error {
	return NewParityValidator(order, cells, descriptors, op).Validate()
}

// ValidateNotEmpty is a convenience function for empty Series validation
func ValidateNotEmpty(series LengthProvider, op string) error {
	return NewEmptySeriesValidator(series, op).Validate()
}
