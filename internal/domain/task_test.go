package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask(3, "Buy milk", "2 litres")

	assert.Equal(t, Task{ListID: 3, Name: "Buy milk", Note: "2 litres"}, task)
	assert.False(t, task.IsComplete, "new tasks start pending")
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"valid task", Task{ListID: 1, Name: "Valid"}, true},
		{"empty name", Task{ListID: 1, Name: ""}, false},
		{"no list", Task{Name: "Orphan"}, false},
		{"whitespace name", Task{ListID: 1, Name: "   "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_SectionAndLabel(t *testing.T) {
	pending := Task{Name: "A"}
	done := Task{Name: "B", IsComplete: true}

	assert.Equal(t, SectionPending, pending.Section())
	assert.Equal(t, "Done", pending.ActionLabel())
	assert.Equal(t, SectionCompleted, done.Section())
	assert.Equal(t, "Undone", done.ActionLabel())
}

func TestTask_Before(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Task
		expected bool
	}{
		{"lower position first", Task{ID: 9, Position: 1}, Task{ID: 1, Position: 2}, true},
		{"higher position after", Task{ID: 1, Position: 5}, Task{ID: 9, Position: -1}, false},
		{"ties broken by id", Task{ID: 1, Position: 4}, Task{ID: 2, Position: 4}, true},
		{"not before itself", Task{ID: 2, Position: 4}, Task{ID: 2, Position: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Before(tt.b))
		})
	}
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "My Task", Task{ID: 1, Name: "My Task"}.String())
}

func TestTaskListSummary_Total(t *testing.T) {
	summary := TaskListSummary{List: NewTaskList("Home"), Pending: 2, Completed: 3}
	assert.Equal(t, 5, summary.Total())
	assert.Equal(t, "Home", summary.List.String())
}
