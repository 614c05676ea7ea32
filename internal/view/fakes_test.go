package view

import (
	"context"
	"fmt"

	"tasklists/internal/domain"
	"tasklists/internal/services"
)

// fakePrompt confirms with the queued drafts in order. With no draft queued
// it cancels; with deferred set it keeps the callback for the test to fire.
type fakePrompt struct {
	drafts   []Draft
	deferred bool
	titles   []string
	initials []*Draft
	pending  func(Draft)
}

func (p *fakePrompt) Show(title string, initial *Draft, onConfirm func(Draft)) {
	p.titles = append(p.titles, title)
	p.initials = append(p.initials, initial)
	if p.deferred {
		p.pending = onConfirm
		return
	}
	if len(p.drafts) == 0 {
		return
	}
	d := p.drafts[0]
	p.drafts = p.drafts[1:]
	onConfirm(d)
}

func (p *fakePrompt) confirm(d Draft) {
	cb := p.pending
	p.pending = nil
	cb(d)
}

// recordingDisplay records every action as a short string.
type recordingDisplay struct {
	actions  []string
	messages []string
}

func (d *recordingDisplay) InsertRow(p Position) {
	d.actions = append(d.actions, "insert "+p.String())
}

func (d *recordingDisplay) ReloadRow(p Position) {
	d.actions = append(d.actions, "reload "+p.String())
}

func (d *recordingDisplay) DeleteRow(p Position) {
	d.actions = append(d.actions, "delete "+p.String())
}

func (d *recordingDisplay) MoveRow(from, to Position) {
	d.actions = append(d.actions, fmt.Sprintf("move %s->%s", from, to))
}

func (d *recordingDisplay) Notify(message string) {
	d.messages = append(d.messages, message)
}

func (d *recordingDisplay) reset() {
	d.actions = nil
	d.messages = nil
}

// flakyStorage wraps a Storage and fails the named operations.
type flakyStorage struct {
	Storage
	fail  map[string]error
	calls map[string]int
	// silent drops subscriptions so the view never hears about changes
	silent bool
}

func newFlakyStorage(inner Storage) *flakyStorage {
	return &flakyStorage{Storage: inner, fail: map[string]error{}, calls: map[string]int{}}
}

func (s *flakyStorage) Tasks(ctx context.Context, listID int64) ([]*domain.Task, error) {
	s.calls["tasks"]++
	if err := s.fail["tasks"]; err != nil {
		return nil, err
	}
	return s.Storage.Tasks(ctx, listID)
}

func (s *flakyStorage) Create(ctx context.Context, listID int64, name, note string) (*domain.Task, error) {
	s.calls["create"]++
	if err := s.fail["create"]; err != nil {
		return nil, err
	}
	return s.Storage.Create(ctx, listID, name, note)
}

func (s *flakyStorage) Edit(ctx context.Context, id int64, name, note string) (*domain.Task, error) {
	s.calls["edit"]++
	if err := s.fail["edit"]; err != nil {
		return nil, err
	}
	return s.Storage.Edit(ctx, id, name, note)
}

func (s *flakyStorage) ToggleComplete(ctx context.Context, id int64) (*domain.Task, error) {
	s.calls["toggle"]++
	if err := s.fail["toggle"]; err != nil {
		return nil, err
	}
	return s.Storage.ToggleComplete(ctx, id)
}

func (s *flakyStorage) Delete(ctx context.Context, id int64) error {
	s.calls["delete"]++
	if err := s.fail["delete"]; err != nil {
		return err
	}
	return s.Storage.Delete(ctx, id)
}

func (s *flakyStorage) Subscribe(listID int64, obs services.Observer) func() {
	if s.silent {
		return func() {}
	}
	return s.Storage.Subscribe(listID, obs)
}

func (s *flakyStorage) mutations() int {
	return s.calls["create"] + s.calls["edit"] + s.calls["toggle"] + s.calls["delete"]
}
