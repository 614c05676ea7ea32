package view

import (
	"testing"

	"tasklists/internal/domain"
	"tasklists/internal/services"

	"github.com/stretchr/testify/assert"
)

func ids(ix *index, s domain.Section) []int64 {
	return append([]int64{}, ix.sections[s]...)
}

func TestNewIndex_OrdersByPositionThenID(t *testing.T) {
	ix := newIndex([]*domain.Task{
		{ID: 3, Name: "c", Position: 2},
		{ID: 1, Name: "a", Position: 2},
		{ID: 2, Name: "b", Position: 1, IsComplete: true},
		{ID: 4, Name: "d", Position: -1},
	})

	assert.Equal(t, []int64{4, 1, 3}, ids(ix, domain.SectionPending))
	assert.Equal(t, []int64{2}, ids(ix, domain.SectionCompleted))
}

func TestIndex_Apply(t *testing.T) {
	base := func() *index {
		return newIndex([]*domain.Task{
			{ID: 1, Name: "A", Position: 1},
			{ID: 2, Name: "B", Position: 2},
			{ID: 3, Name: "C", Position: 0, IsComplete: true},
		})
	}

	tests := []struct {
		name      string
		change    services.Change
		want      indexUpdate
		pending   []int64
		completed []int64
	}{
		{
			name:      "insert appends",
			change:    services.Change{Kind: services.ChangeInserted, Task: domain.Task{ID: 4, Position: 3}},
			want:      indexUpdate{action: actionInsert, to: Position{domain.SectionPending, 2}},
			pending:   []int64{1, 2, 4},
			completed: []int64{3},
		},
		{
			name:      "update reloads in place",
			change:    services.Change{Kind: services.ChangeUpdated, Task: domain.Task{ID: 2, Name: "B2", Position: 2}},
			want:      indexUpdate{action: actionReload, from: Position{domain.SectionPending, 1}, to: Position{domain.SectionPending, 1}},
			pending:   []int64{1, 2},
			completed: []int64{3},
		},
		{
			name:      "toggle moves to head",
			change:    services.Change{Kind: services.ChangeToggled, Task: domain.Task{ID: 2, IsComplete: true, Position: -1}},
			want:      indexUpdate{action: actionMove, from: Position{domain.SectionPending, 1}, to: Position{domain.SectionCompleted, 0}},
			pending:   []int64{1},
			completed: []int64{2, 3},
		},
		{
			name:      "update changing section moves",
			change:    services.Change{Kind: services.ChangeUpdated, Task: domain.Task{ID: 3, Position: 0}},
			want:      indexUpdate{action: actionMove, from: Position{domain.SectionCompleted, 0}, to: Position{domain.SectionPending, 0}},
			pending:   []int64{3, 1, 2},
			completed: []int64{},
		},
		{
			name:      "delete removes",
			change:    services.Change{Kind: services.ChangeDeleted, Task: domain.Task{ID: 1}},
			want:      indexUpdate{action: actionDelete, from: Position{domain.SectionPending, 0}},
			pending:   []int64{2},
			completed: []int64{3},
		},
		{
			name:      "delete of unknown task is ignored",
			change:    services.Change{Kind: services.ChangeDeleted, Task: domain.Task{ID: 9}},
			want:      indexUpdate{action: actionNone},
			pending:   []int64{1, 2},
			completed: []int64{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := base()
			got := ix.apply(tt.change)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.pending, ids(ix, domain.SectionPending))
			assert.Equal(t, tt.completed, ids(ix, domain.SectionCompleted))
			if tt.change.Kind != services.ChangeDeleted {
				stored, ok := ix.task(tt.change.Task.ID)
				assert.True(t, ok)
				assert.Equal(t, tt.change.Task, stored)
			}
		})
	}
}

func TestIndex_AtPanicsOutOfRange(t *testing.T) {
	ix := newIndex(nil)
	assert.Equal(t, 0, ix.count(domain.SectionPending))
	assert.Panics(t, func() { ix.at(domain.SectionPending, 0) })
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "1.3", Position{Section: domain.SectionCompleted, Row: 3}.String())
}
