package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/paveg/dataseries/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *errors.SeriesError
		expected string
	}{
		{
			name: "Error with label",
			err: &errors.SeriesError{
				Op:      "Update",
				Label:   `"Item 1"`,
				Message: "requested type float32, slot holds int32",
			},
			expected: `Update operation failed on entry "Item 1": requested type float32, slot holds int32`,
		},
		{
			name: "Error without label",
			err: &errors.SeriesError{
				Op:      "ToArrow",
				Message: "unsupported type: []int",
			},
			expected: "ToArrow operation failed: unsupported type: []int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestSeriesError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying error")
	err := &errors.SeriesError{
		Op:      "Update",
		Message: "evaluation failed",
		Cause:   cause,
	}

	assert.Equal(t, cause, err.Unwrap())
}

func TestSeriesError_Is(t *testing.T) {
	err1 := &errors.SeriesError{Op: "Update", Label: "1", Message: "bad"}
	err2 := &errors.SeriesError{Op: "Update", Label: "1", Message: "bad"}
	err3 := &errors.SeriesError{Op: "Remove", Label: "1", Message: "bad"}

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.False(t, err1.Is(stderrors.New("different error")))
}

func TestNewTypeMismatchError(t *testing.T) {
	err := errors.NewTypeMismatchError("Update", "float32", "int32")

	assert.Equal(t, "Update", err.Op)
	assert.Equal(t, "requested type float32, slot holds int32", err.Message)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
	assert.NotErrorIs(t, err, errors.ErrIndexOutOfBounds)
}

func TestNewIndexOutOfBoundsError(t *testing.T) {
	err := errors.NewIndexOutOfBoundsError("Update", 5, 3)

	assert.Equal(t, "Update operation failed: index 5 out of bounds [0, 3)", err.Error())
	assert.ErrorIs(t, err, errors.ErrIndexOutOfBounds)
}

func TestNewStaleHandleError(t *testing.T) {
	err := errors.NewStaleHandleError("Handle.Set")

	assert.Equal(t, "Handle.Set", err.Op)
	assert.ErrorIs(t, err, errors.ErrStaleHandle)
}

func TestNewUnsupportedTypeError(t *testing.T) {
	err := errors.NewUnsupportedTypeError("ToArrow", "[]complex128")

	assert.Equal(t, "ToArrow", err.Op)
	assert.Equal(t, "unsupported type: []complex128", err.Message)
	assert.ErrorIs(t, err, errors.ErrUnsupportedType)
}

func TestNewValidationError(t *testing.T) {
	err := errors.NewValidationError("Check", "", "dangling key 7")

	assert.Equal(t, "Check", err.Op)
	assert.Empty(t, err.Label)
	assert.Equal(t, "dangling key 7", err.Message)
}

func TestNewInternalError(t *testing.T) {
	cause := stderrors.New("builder failed")
	err := errors.NewInternalError("ToArrow", cause)

	assert.Equal(t, "ToArrow", err.Op)
	assert.Equal(t, "internal error occurred", err.Message)
	assert.Equal(t, cause, err.Unwrap())
}

func TestWithLabel(t *testing.T) {
	base := errors.NewTypeMismatchError("Update", "string", "int")
	labeled := base.WithLabel("42")

	require.NotSame(t, base, labeled)
	assert.Empty(t, base.Label)
	assert.Equal(t, "42", labeled.Label)
	assert.ErrorIs(t, labeled, errors.ErrTypeMismatch)
}

func TestPredefinedErrors(t *testing.T) {
	assert.Equal(t, "validation", errors.ErrEmptySeries.Op)
	assert.Equal(t, "operation not supported on empty Series", errors.ErrEmptySeries.Message)

	assert.Equal(t, "validation", errors.ErrMismatchedLength.Op)
	assert.Equal(t, "indexing", errors.ErrIndexOutOfBounds.Op)
	assert.Equal(t, "index out of bounds", errors.ErrIndexOutOfBounds.Message)
}
