package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("name is required")
	err := NewValidationError("invalid task", cause)

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "invalid task", err.Message)
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Equal(t, cause, err.Cause)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task list", "Groceries")

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Equal(t, "task list not found: Groceries", err.Message)
	assert.Equal(t, "NOT_FOUND", err.Code)

	resource, ok := err.GetContext("resource")
	assert.True(t, ok)
	assert.Equal(t, "task list", resource)

	identifier, ok := err.GetContext("identifier")
	assert.True(t, ok)
	assert.Equal(t, "Groceries", identifier)
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewStorageError("create task", cause)

	assert.Equal(t, ErrorTypeStorage, err.Type)
	assert.Equal(t, "storage operation failed: create task", err.Message)
	assert.Equal(t, "STORAGE_ERROR", err.Code)
	assert.ErrorIs(t, err, cause)

	operation, ok := err.GetContext("operation")
	assert.True(t, ok)
	assert.Equal(t, "create task", operation)
}

func TestNewStorageError_DeadlineBecomesTimeout(t *testing.T) {
	err := NewStorageError("list tasks", fmt.Errorf("query: %w", context.DeadlineExceeded))

	assert.Equal(t, ErrorTypeTimeout, err.Type)
	assert.Equal(t, "TIMEOUT", err.Code)
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("section", "archive", "must be current or completed")

	assert.Equal(t, ErrorTypeInvalidInput, err.Type)
	assert.Equal(t, "invalid input for section: must be current or completed", err.Message)
	assert.Equal(t, "INVALID_INPUT", err.Code)

	value, ok := err.GetContext("value")
	assert.True(t, ok)
	assert.Equal(t, "archive", value)
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError("list tasks", "5s")

	assert.Equal(t, ErrorTypeTimeout, err.Type)
	assert.Equal(t, "operation timed out: list tasks", err.Message)
	assert.Equal(t, "TIMEOUT", err.Code)
}

func TestNewConsistencyError(t *testing.T) {
	err := NewConsistencyError("task view", "task 7 missing from completed")

	assert.Equal(t, ErrorTypeConsistency, err.Type)
	assert.Equal(t, "task view out of sync: task 7 missing from completed", err.Message)
	assert.Equal(t, "CONSISTENCY_ERROR", err.Code)
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeStorage, "wrapped message")

	assert.Equal(t, ErrorTypeStorage, err.Type)
	assert.Equal(t, "wrapped message", err.Message)
	assert.Equal(t, "storage", err.Code)
	assert.Equal(t, cause, err.Cause)
}

func TestIsAndAsAppError(t *testing.T) {
	appErr := NewNotFoundError("task", "1")
	wrapped := fmt.Errorf("edit: %w", appErr)
	plain := errors.New("plain")

	assert.True(t, IsAppError(appErr))
	assert.True(t, IsAppError(wrapped))
	assert.False(t, IsAppError(plain))
	assert.False(t, IsAppError(nil))

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Same(t, appErr, got)

	got, ok = AsAppError(plain)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestIsErrorType(t *testing.T) {
	appErr := NewValidationError("bad", nil)

	assert.True(t, IsErrorType(appErr, ErrorTypeValidation))
	assert.False(t, IsErrorType(appErr, ErrorTypeStorage))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeValidation))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Validation error", NewValidationError("invalid input", nil), "invalid input"},
		{"Not found error", NewNotFoundError("task", "12"), "task not found: 12"},
		{"Invalid input error", NewInvalidInputError("row", 9, "out of range"), "invalid input for row: out of range"},
		{"Storage error", NewStorageError("delete task", errors.New("locked")), "The task list could not be saved. Please try again."},
		{"Timeout error", NewTimeoutError("query", "5s"), "The operation timed out. Please try again."},
		{"Consistency error", NewConsistencyError("task view", "x"), "The task list is out of date. Reopen it and try again."},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", GetErrorCode(NewNotFoundError("task", "1")))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("regular error")))
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Not found error", NewNotFoundError("task", "1"), false},
		{"Invalid input error", NewInvalidInputError("row", "x", "format"), false},
		{"Storage error", NewStorageError("query", errors.New("boom")), true},
		{"Timeout error", NewTimeoutError("query", "5s"), true},
		{"Consistency error", NewConsistencyError("task view", "x"), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldLogError(tt.err))
		})
	}
}
