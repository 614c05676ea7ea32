package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeStorage, "storage"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorTypeConsistency, "consistency"},
		{ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	withoutCause := &AppError{Type: ErrorTypeValidation, Message: "invalid input"}
	withCause := &AppError{Type: ErrorTypeStorage, Message: "write failed", Cause: errors.New("locked")}

	assert.Equal(t, "validation: invalid input", withoutCause.Error())
	assert.Equal(t, "storage: write failed (caused by: locked)", withCause.Error())
}

func TestAppError_Is(t *testing.T) {
	a := &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}
	b := &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}
	c := &AppError{Type: ErrorTypeStorage, Code: "STORAGE_ERROR"}

	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
	assert.False(t, a.Is(errors.New("regular error")))
	assert.True(t, errors.Is(a, b))
}

func TestAppError_Context(t *testing.T) {
	appErr := &AppError{Type: ErrorTypeValidation}

	assert.Same(t, appErr, appErr.WithContext("field", "note"))

	value, ok := appErr.GetContext("field")
	assert.True(t, ok)
	assert.Equal(t, "note", value)

	_, ok = appErr.GetContext("missing")
	assert.False(t, ok)

	appErr.Context = nil
	_, ok = appErr.GetContext("field")
	assert.False(t, ok)
}
