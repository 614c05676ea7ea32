package validation

import (
	"testing"

	"tasklists/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.IsNonEmptyString("milk"))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString("  \t "))
}

func TestValidator_IsValidStringLength(t *testing.T) {
	v := NewValidator()
	tests := []struct {
		name     string
		input    string
		min, max int
		expected bool
	}{
		{"within range", "hello", 1, 10, true},
		{"trimmed before counting", "  hi  ", 1, 2, true},
		{"too short", "", 1, 10, false},
		{"too long", "abcdef", 1, 5, false},
		{"counts runes not bytes", "ééé", 1, 3, true},
		{"unbounded max", "abcdefghijklmnop", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.IsValidStringLength(tt.input, tt.min, tt.max))
		})
	}
}

func TestValidator_HasControlCharacters(t *testing.T) {
	v := NewValidator()
	assert.False(t, v.HasControlCharacters("Buy milk, eggs & bread!", false))
	assert.True(t, v.HasControlCharacters("line\nbreak", false))
	assert.False(t, v.HasControlCharacters("line\nbreak\tand tab", true))
	assert.True(t, v.HasControlCharacters("bell\a", true))
}

func TestValidator_IsValidID(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.IsValidID(1))
	assert.False(t, v.IsValidID(0))
	assert.False(t, v.IsValidID(-4))
}

func TestValidator_ConfiguredLimits(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TaskNameMinLength = 2
	cfg.Validation.TaskNameMaxLength = 4
	cfg.Validation.NoteMaxLength = 8
	cfg.Validation.ListNameMaxLength = 6

	v := NewValidatorWithConfig(cfg)
	assert.Equal(t, 2, v.getTaskNameMinLength())
	assert.Equal(t, 4, v.getTaskNameMaxLength())
	assert.Equal(t, 8, v.getNoteMaxLength())
	assert.Equal(t, 6, v.getListNameMaxLength())

	d := NewValidator()
	assert.Equal(t, 1, d.getTaskNameMinLength())
	assert.Equal(t, 255, d.getTaskNameMaxLength())
	assert.Equal(t, 1000, d.getNoteMaxLength())
	assert.Equal(t, 100, d.getListNameMaxLength())
}
