package api

import (
	"context"

	"tasklists/internal/domain"
)

// SectionSnapshot is one titled section of a list.
type SectionSnapshot struct {
	Title string         `json:"title"`
	Tasks []*domain.Task `json:"tasks"`
}

// ListSnapshot is a point-in-time copy of a list as the view presents it.
type ListSnapshot struct {
	List      domain.TaskList `json:"list"`
	Pending   SectionSnapshot `json:"pending"`
	Completed SectionSnapshot `json:"completed"`
}

// Sections returns both sections in display order.
func (s *ListSnapshot) Sections() []SectionSnapshot {
	return []SectionSnapshot{s.Pending, s.Completed}
}

// Total returns the number of tasks in the list.
func (s *ListSnapshot) Total() int {
	return len(s.Pending.Tasks) + len(s.Completed.Tasks)
}

// Snapshot loads a view without prompt or display and copies its sections.
func (a *apiImpl) Snapshot(ctx context.Context, name string) (*ListSnapshot, error) {
	v, err := a.OpenView(ctx, name, nil, nil)
	if err != nil {
		return nil, err
	}
	defer v.Close()

	section := func(s domain.Section) SectionSnapshot {
		tasks := v.Tasks(s)
		out := make([]*domain.Task, len(tasks))
		for i := range tasks {
			out[i] = &tasks[i]
		}
		return SectionSnapshot{Title: v.SectionTitle(s), Tasks: out}
	}

	return &ListSnapshot{
		List:      v.List(),
		Pending:   section(domain.SectionPending),
		Completed: section(domain.SectionCompleted),
	}, nil
}
