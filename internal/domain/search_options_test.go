package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchOptions_Matches(t *testing.T) {
	listID := int64(2)
	completed := SectionCompleted
	task := Task{ID: 1, ListID: 2, Name: "Design Frontend", Note: "Figma mockups", IsComplete: true}

	tests := []struct {
		name string
		opts SearchOptions
		want bool
	}{
		{"empty options", SearchOptions{}, true},
		{"name text any case", SearchOptions{Text: "design"}, true},
		{"note text", SearchOptions{Text: "FIGMA"}, true},
		{"text miss", SearchOptions{Text: "backend"}, false},
		{"list match", SearchOptions{ListID: &listID}, true},
		{"section match", SearchOptions{Section: &completed}, true},
		{"all set", SearchOptions{Text: "front", ListID: &listID, Section: &completed}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Matches(task))
		})
	}

	otherList := int64(3)
	pending := SectionPending
	assert.False(t, SearchOptions{ListID: &otherList}.Matches(task))
	assert.False(t, SearchOptions{Section: &pending}.Matches(task))
}
