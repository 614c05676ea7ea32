package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection_Opposite(t *testing.T) {
	assert.Equal(t, SectionCompleted, SectionPending.Opposite())
	assert.Equal(t, SectionPending, SectionCompleted.Opposite())
}

func TestSection_IsComplete(t *testing.T) {
	assert.False(t, SectionPending.IsComplete())
	assert.True(t, SectionCompleted.IsComplete())
}

func TestSection_Valid(t *testing.T) {
	assert.True(t, SectionPending.Valid())
	assert.True(t, SectionCompleted.Valid())
	assert.False(t, Section(2).Valid())
	assert.False(t, Section(-1).Valid())
}

func TestParseSection(t *testing.T) {
	tests := []struct {
		input    string
		expected Section
		wantErr  bool
	}{
		{"0", SectionPending, false},
		{"current", SectionPending, false},
		{" Pending ", SectionPending, false},
		{"1", SectionCompleted, false},
		{"done", SectionCompleted, false},
		{"COMPLETED", SectionCompleted, false},
		{"2", 0, true},
		{"archive", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSection(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSection_String(t *testing.T) {
	assert.Equal(t, "current", SectionPending.String())
	assert.Equal(t, "completed", SectionCompleted.String())
	assert.Equal(t, "section(7)", Section(7).String())
}
