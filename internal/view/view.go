// Package view presents one task list as two sections, current and
// completed, and turns user commands into storage mutations while keeping a
// row-oriented display in step with them.
package view

import (
	"context"
	"errors"
	"fmt"

	"tasklists/internal/domain"
	apperrors "tasklists/internal/errors"
	"tasklists/internal/logging"
	"tasklists/internal/services"
)

// ErrNotLoaded is returned by commands issued before Load.
var ErrNotLoaded = errors.New("task list view: no list loaded")

// Prompt titles
const (
	TitleNewTask  = "New Task"
	TitleEditTask = "Edit Task"
)

// Storage is the persistence capability the view drives. Subscribe must
// deliver changes synchronously, before the mutating call returns.
type Storage interface {
	Tasks(ctx context.Context, listID int64) ([]*domain.Task, error)
	Create(ctx context.Context, listID int64, name, note string) (*domain.Task, error)
	Edit(ctx context.Context, id int64, name, note string) (*domain.Task, error)
	ToggleComplete(ctx context.Context, id int64) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
	Subscribe(listID int64, obs services.Observer) (cancel func())
}

// Draft is the name and note collected by a Prompt.
type Draft struct {
	Name string
	Note string
}

// Prompt collects a Draft from the user. onConfirm is called at most once,
// either before Show returns or later; a cancelled prompt never calls it.
type Prompt interface {
	Show(title string, initial *Draft, onConfirm func(Draft))
}

// Display receives row-level synchronisation actions.
type Display interface {
	InsertRow(p Position)
	ReloadRow(p Position)
	DeleteRow(p Position)
	MoveRow(from, to Position)
	Notify(message string)
}

// Options tune presentation and position resolution.
type Options struct {
	PendingTitle    string
	CompletedTitle  string
	StrictPositions bool
}

// DefaultOptions returns the built-in section titles with soft position resolution.
func DefaultOptions() Options {
	return Options{
		PendingTitle:   "CURRENT TASKS",
		CompletedTitle: "COMPLETED TASKS",
	}
}

// TaskListView is not safe for concurrent use; front ends drive it from a
// single goroutine.
type TaskListView struct {
	storage Storage
	prompt  Prompt
	display Display
	opts    Options

	list     *domain.TaskList
	index    *index
	cancel   func()
	inFlight bool
}

type headless struct{}

func (headless) Show(string, *Draft, func(Draft)) {}
func (headless) InsertRow(Position)               {}
func (headless) ReloadRow(Position)               {}
func (headless) DeleteRow(Position)               {}
func (headless) MoveRow(Position, Position)       {}
func (headless) Notify(string)                    {}

// New creates an unloaded view. A nil prompt cancels every request and a nil
// display drops row actions, which suits read-only snapshots.
func New(storage Storage, prompt Prompt, display Display, opts Options) *TaskListView {
	if prompt == nil {
		prompt = headless{}
	}
	if display == nil {
		display = headless{}
	}
	return &TaskListView{
		storage: storage,
		prompt:  prompt,
		display: display,
		opts:    opts,
	}
}

// Load derives both sections from storage and starts following changes to
// list. Loading again, for the same or another list, re-derives from scratch.
// On failure the previously loaded state is kept.
func (v *TaskListView) Load(ctx context.Context, list domain.TaskList) error {
	tasks, err := v.storage.Tasks(ctx, list.ID)
	if err != nil {
		return err
	}

	if v.cancel != nil {
		v.cancel()
	}
	v.list = &list
	v.index = newIndex(tasks)
	v.cancel = v.storage.Subscribe(list.ID, v.observe)

	logging.Debugf("view: loaded %q with %d current and %d completed tasks",
		list.Name, v.index.count(domain.SectionPending), v.index.count(domain.SectionCompleted))
	return nil
}

// Close stops following changes. The view must be loaded again before reuse.
func (v *TaskListView) Close() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.list = nil
	v.index = nil
}

// Loaded reports whether Load has succeeded since the last Close.
func (v *TaskListView) Loaded() bool {
	return v.index != nil
}

func (v *TaskListView) mustBeLoaded() {
	if v.index == nil {
		panic(ErrNotLoaded)
	}
}

// List returns the loaded list.
func (v *TaskListView) List() domain.TaskList {
	v.mustBeLoaded()
	return *v.list
}

// Title is the name of the loaded list.
func (v *TaskListView) Title() string {
	v.mustBeLoaded()
	return v.list.Name
}

// SectionCount is always 2.
func (v *TaskListView) SectionCount() int {
	return len(domain.Sections)
}

// SectionTitle returns the header of s.
func (v *TaskListView) SectionTitle(s domain.Section) string {
	switch s {
	case domain.SectionPending:
		return v.opts.PendingTitle
	case domain.SectionCompleted:
		return v.opts.CompletedTitle
	}
	panic(fmt.Sprintf("view: unknown section %d", int(s)))
}

func checkSection(s domain.Section) {
	if !s.Valid() {
		panic(fmt.Sprintf("view: unknown section %d", int(s)))
	}
}

// RowCount returns the number of tasks in s.
func (v *TaskListView) RowCount(s domain.Section) int {
	v.mustBeLoaded()
	checkSection(s)
	return v.index.count(s)
}

// RowContent returns the name and note shown at row of s.
func (v *TaskListView) RowContent(s domain.Section, row int) (name, note string) {
	t := v.TaskAt(s, row)
	return t.Name, t.Note
}

// TaskAt returns the task shown at row of s. Rows outside [0, RowCount(s)) panic.
func (v *TaskListView) TaskAt(s domain.Section, row int) domain.Task {
	v.mustBeLoaded()
	checkSection(s)
	return v.index.at(s, row)
}

// ActionLabel is the label of the toggle action for the row: "Done" or "Undone".
func (v *TaskListView) ActionLabel(s domain.Section, row int) string {
	return v.TaskAt(s, row).ActionLabel()
}

// Tasks returns a snapshot of s in display order.
func (v *TaskListView) Tasks(s domain.Section) []domain.Task {
	v.mustBeLoaded()
	checkSection(s)
	return v.index.snapshot(s)
}

// RequestCreate opens the prompt for a new task.
func (v *TaskListView) RequestCreate(ctx context.Context) error {
	return v.Create(ctx)
}

// RequestEdit opens the prompt pre-filled with the task at row of s.
func (v *TaskListView) RequestEdit(ctx context.Context, s domain.Section, row int) error {
	if !v.Loaded() {
		return ErrNotLoaded
	}
	return v.Edit(ctx, v.TaskAt(s, row).ID)
}

// RequestDelete deletes the task at row of s.
func (v *TaskListView) RequestDelete(ctx context.Context, s domain.Section, row int) error {
	if !v.Loaded() {
		return ErrNotLoaded
	}
	return v.Delete(ctx, v.TaskAt(s, row).ID)
}

// RequestToggle flips completion of the task at row of s.
func (v *TaskListView) RequestToggle(ctx context.Context, s domain.Section, row int) error {
	if !v.Loaded() {
		return ErrNotLoaded
	}
	return v.Toggle(ctx, v.TaskAt(s, row).ID)
}

// Create opens the prompt and, once confirmed, stores a new task and inserts
// its row in the current section. The returned error covers the stored
// result only when the prompt confirms before Show returns.
func (v *TaskListView) Create(ctx context.Context) error {
	if !v.Loaded() {
		return ErrNotLoaded
	}

	var result error
	v.prompt.Show(TitleNewTask, nil, func(d Draft) {
		result = v.confirmCreate(ctx, d)
	})
	return result
}

func (v *TaskListView) confirmCreate(ctx context.Context, d Draft) error {
	if !v.Loaded() {
		return ErrNotLoaded
	}

	var task *domain.Task
	err := v.mutate(func() error {
		var err error
		task, err = v.storage.Create(ctx, v.list.ID, d.Name, d.Note)
		return err
	})
	if err != nil {
		return err
	}

	to, err := v.resolve(task.ID, domain.SectionPending)
	if err != nil {
		return err
	}
	v.display.InsertRow(to)
	return nil
}

// Edit opens the prompt pre-filled with the task and, once confirmed, saves
// the new name and note and reloads the task's row.
func (v *TaskListView) Edit(ctx context.Context, taskID int64) error {
	task, err := v.lookup(taskID)
	if err != nil {
		return err
	}

	var result error
	v.prompt.Show(TitleEditTask, &Draft{Name: task.Name, Note: task.Note}, func(d Draft) {
		result = v.confirmEdit(ctx, task.ID, d)
	})
	return result
}

// confirmEdit looks the task up again: it may have moved or gone while the
// prompt was open.
func (v *TaskListView) confirmEdit(ctx context.Context, taskID int64, d Draft) error {
	task, err := v.lookup(taskID)
	if err != nil {
		return err
	}

	err = v.mutate(func() error {
		_, err := v.storage.Edit(ctx, task.ID, d.Name, d.Note)
		return err
	})
	if err != nil {
		return err
	}

	at, err := v.resolve(task.ID, task.Section())
	if err != nil {
		return err
	}
	v.display.ReloadRow(at)
	return nil
}

// Delete removes the task and its row.
func (v *TaskListView) Delete(ctx context.Context, taskID int64) error {
	task, err := v.lookup(taskID)
	if err != nil {
		return err
	}

	from, err := v.resolve(task.ID, task.Section())
	if err != nil {
		return err
	}

	if err := v.mutate(func() error { return v.storage.Delete(ctx, task.ID) }); err != nil {
		return err
	}
	v.display.DeleteRow(from)
	return nil
}

// Toggle flips completion of the task and moves its row to the head of the
// opposite section.
func (v *TaskListView) Toggle(ctx context.Context, taskID int64) error {
	task, err := v.lookup(taskID)
	if err != nil {
		return err
	}

	from, err := v.resolve(task.ID, task.Section())
	if err != nil {
		return err
	}

	err = v.mutate(func() error {
		_, err := v.storage.ToggleComplete(ctx, task.ID)
		return err
	})
	if err != nil {
		return err
	}

	to, err := v.resolve(task.ID, task.Section().Opposite())
	if err != nil {
		return err
	}
	v.display.MoveRow(from, to)
	return nil
}

// lookup finds a task of the loaded list by id.
func (v *TaskListView) lookup(taskID int64) (domain.Task, error) {
	if !v.Loaded() {
		return domain.Task{}, ErrNotLoaded
	}
	task, ok := v.index.task(taskID)
	if !ok {
		err := apperrors.NewNotFoundError("task in list "+v.list.Name, fmt.Sprintf("%d", taskID))
		v.display.Notify(apperrors.GetUserMessage(err))
		return domain.Task{}, err
	}
	return task, nil
}

// mutate runs one storage call. Changes it publishes update the index
// without display actions; the caller issues the single row action. A
// failure is reported through the display and returned.
func (v *TaskListView) mutate(call func() error) error {
	v.inFlight = true
	err := call()
	v.inFlight = false

	if err != nil {
		if apperrors.ShouldLogError(err) {
			logging.Debugf("view: storage call failed: %v", err)
		}
		v.display.Notify(apperrors.GetUserMessage(err))
		return err
	}
	return nil
}

// resolve locates a task within expected at the time of the call. When the
// task is not there, strict views fail with a consistency error; otherwise
// row 0 of expected is used and a warning logged.
func (v *TaskListView) resolve(taskID int64, expected domain.Section) (Position, error) {
	if p, ok := v.index.position(taskID); ok && p.Section == expected {
		return p, nil
	}

	detail := fmt.Sprintf("task %d is not in the %s section of %q", taskID, expected, v.list.Name)
	if v.opts.StrictPositions {
		err := apperrors.NewConsistencyError("task list view", detail)
		v.display.Notify(apperrors.GetUserMessage(err))
		return Position{}, err
	}

	logging.Warnf("%s; using row 0", detail)
	return Position{Section: expected, Row: 0}, nil
}

// observe keeps the index current. Changes that did not come from this
// view's own mutation are forwarded to the display as row actions.
func (v *TaskListView) observe(c services.Change) {
	if v.index == nil || v.list == nil || c.ListID != v.list.ID {
		return
	}

	update := v.index.apply(c)
	if v.inFlight {
		return
	}

	switch update.action {
	case actionInsert:
		v.display.InsertRow(update.to)
	case actionReload:
		v.display.ReloadRow(update.to)
	case actionDelete:
		v.display.DeleteRow(update.from)
	case actionMove:
		v.display.MoveRow(update.from, update.to)
	}
}
