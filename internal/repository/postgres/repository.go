// Package postgres stores task lists in PostgreSQL through a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "tasklists/internal/errors"
	"tasklists/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgRepository is a PostgreSQL-backed repository.Repository.
type PgRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

var _ repository.Repository = (*PgRepository)(nil)

// Open connects to dsn and ensures the schema exists.
func Open(ctx context.Context, dsn string) (*PgRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, apperrors.NewStorageError("connect to postgres", err)
	}
	r := NewPgRepository(pool)
	if err := r.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, apperrors.NewStorageError("ensure schema", err)
	}
	return r, nil
}

// NewPgRepository wraps an existing pool. The schema is not touched.
func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{
		pool: pool,
		now:  func() time.Time { return time.Now().Truncate(time.Microsecond) },
	}
}

// EnsureSchema creates the task_lists and tasks tables if they don't exist.
func (r *PgRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS task_lists (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id          BIGSERIAL PRIMARY KEY,
			list_id     BIGINT NOT NULL REFERENCES task_lists(id) ON DELETE CASCADE,
			name        TEXT NOT NULL,
			note        TEXT NOT NULL DEFAULT '',
			is_complete BOOLEAN NOT NULL DEFAULT FALSE,
			position    BIGINT NOT NULL DEFAULT 0,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_tasks_list_position ON tasks(list_id, position)`)
	return err
}

// Close releases the pool.
func (r *PgRepository) Close() error {
	r.pool.Close()
	return nil
}

const taskColumns = `id, list_id, name, note, is_complete, position, created_at, updated_at`

func scanTask(row pgx.Row) (*repository.Task, error) {
	var t repository.Task
	err := row.Scan(&t.ID, &t.ListID, &t.Name, &t.Note, &t.IsComplete, &t.Position, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTaskList(row pgx.Row) (*repository.TaskList, error) {
	var l repository.TaskList
	if err := row.Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

// classify maps pgx errors onto app errors.
func classify(err error, operation, entity, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(entity, id)
	}
	return apperrors.NewStorageError(operation, err)
}

func requireAffected(tag int64, entity, id string) error {
	if tag == 0 {
		return apperrors.NewNotFoundError(entity, id)
	}
	return nil
}

// CreateTaskList inserts a new task list.
func (r *PgRepository) CreateTaskList(ctx context.Context, list *repository.TaskList) error {
	list.CreatedAt = r.now()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO task_lists (name, created_at) VALUES ($1, $2) RETURNING id`,
		list.Name, list.CreatedAt).Scan(&list.ID)
	if err != nil {
		return apperrors.NewStorageError("create task list", err)
	}
	return nil
}

// GetTaskList retrieves a task list by ID.
func (r *PgRepository) GetTaskList(ctx context.Context, id int64) (*repository.TaskList, error) {
	l, err := scanTaskList(r.pool.QueryRow(ctx, `SELECT id, name, created_at FROM task_lists WHERE id = $1`, id))
	if err != nil {
		return nil, classify(err, "get task list", "task list", fmt.Sprintf("%d", id))
	}
	return l, nil
}

// GetTaskListByName retrieves a task list by name.
func (r *PgRepository) GetTaskListByName(ctx context.Context, name string) (*repository.TaskList, error) {
	l, err := scanTaskList(r.pool.QueryRow(ctx, `SELECT id, name, created_at FROM task_lists WHERE name = $1`, name))
	if err != nil {
		return nil, classify(err, "get task list", "task list", name)
	}
	return l, nil
}

// ListTaskLists returns every list ordered by name.
func (r *PgRepository) ListTaskLists(ctx context.Context) ([]*repository.TaskList, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM task_lists ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, apperrors.NewStorageError("list task lists", err)
	}
	defer rows.Close()

	lists := []*repository.TaskList{}
	for rows.Next() {
		l, err := scanTaskList(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("scan task list", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("list task lists", err)
	}
	return lists, nil
}

// CountTasks returns pending and completed counts for a list.
func (r *PgRepository) CountTasks(ctx context.Context, listID int64) (repository.ListCounts, error) {
	var pending, completed int64
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE NOT is_complete),
			COUNT(*) FILTER (WHERE is_complete)
		FROM tasks WHERE list_id = $1`, listID).Scan(&pending, &completed)
	if err != nil {
		return repository.ListCounts{}, apperrors.NewStorageError("count tasks", err)
	}
	return repository.ListCounts{Pending: int(pending), Completed: int(completed)}, nil
}

// UpdateTaskList renames a list.
func (r *PgRepository) UpdateTaskList(ctx context.Context, list *repository.TaskList) error {
	tag, err := r.pool.Exec(ctx, `UPDATE task_lists SET name = $1 WHERE id = $2`, list.Name, list.ID)
	if err != nil {
		return apperrors.NewStorageError("update task list", err)
	}
	return requireAffected(tag.RowsAffected(), "task list", fmt.Sprintf("%d", list.ID))
}

// DeleteTaskList deletes a list; its tasks go with it through the foreign key.
func (r *PgRepository) DeleteTaskList(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM task_lists WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStorageError("delete task list", err)
	}
	return requireAffected(tag.RowsAffected(), "task list", fmt.Sprintf("%d", id))
}

// CreateTask appends a task to its list. The list row is locked so
// concurrent appends get distinct positions.
func (r *PgRepository) CreateTask(ctx context.Context, task *repository.Task) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperrors.NewStorageError("begin create task", err)
	}
	defer tx.Rollback(ctx)

	var listID int64
	err = tx.QueryRow(ctx, `SELECT id FROM task_lists WHERE id = $1 FOR UPDATE`, task.ListID).Scan(&listID)
	if err != nil {
		return classify(err, "lock task list", "task list", fmt.Sprintf("%d", task.ListID))
	}

	now := r.now()
	err = tx.QueryRow(ctx, `
		INSERT INTO tasks (list_id, name, note, is_complete, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position), 0) + 1 FROM tasks WHERE list_id = $1), $5, $5)
		RETURNING id, position`,
		task.ListID, task.Name, task.Note, task.IsComplete, now).Scan(&task.ID, &task.Position)
	if err != nil {
		return apperrors.NewStorageError("create task", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewStorageError("commit create task", err)
	}
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// GetTask retrieves a task by ID.
func (r *PgRepository) GetTask(ctx context.Context, id int64) (*repository.Task, error) {
	t, err := scanTask(r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		return nil, classify(err, "get task", "task", fmt.Sprintf("%d", id))
	}
	return t, nil
}

// ListTasks returns the tasks of a list ordered by position, then id.
func (r *PgRepository) ListTasks(ctx context.Context, listID int64) ([]*repository.Task, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE list_id = $1 ORDER BY position ASC, id ASC`, listID)
	if err != nil {
		return nil, apperrors.NewStorageError("list tasks", err)
	}
	defer rows.Close()

	tasks := []*repository.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("scan task", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("list tasks", err)
	}
	return tasks, nil
}

// UpdateTask saves name and note.
func (r *PgRepository) UpdateTask(ctx context.Context, task *repository.Task) error {
	now := r.now()
	tag, err := r.pool.Exec(ctx, `UPDATE tasks SET name = $1, note = $2, updated_at = $3 WHERE id = $4`,
		task.Name, task.Note, now, task.ID)
	if err != nil {
		return apperrors.NewStorageError("update task", err)
	}
	if err := requireAffected(tag.RowsAffected(), "task", fmt.Sprintf("%d", task.ID)); err != nil {
		return err
	}
	task.UpdatedAt = now
	return nil
}

// SetTaskComplete flips completion and moves the task ahead of its list.
func (r *PgRepository) SetTaskComplete(ctx context.Context, id int64, complete bool) (*repository.Task, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("begin set task complete", err)
	}
	defer tx.Rollback(ctx)

	var listID int64
	err = tx.QueryRow(ctx, `
		SELECT l.id FROM tasks t JOIN task_lists l ON l.id = t.list_id
		WHERE t.id = $1 FOR UPDATE OF l`, id).Scan(&listID)
	if err != nil {
		return nil, classify(err, "lock task list", "task", fmt.Sprintf("%d", id))
	}

	t, err := scanTask(tx.QueryRow(ctx, `
		UPDATE tasks SET
			is_complete = $1,
			position = (SELECT COALESCE(MIN(position), 1) - 1 FROM tasks WHERE list_id = $2),
			updated_at = $3
		WHERE id = $4
		RETURNING `+taskColumns, complete, listID, r.now(), id))
	if err != nil {
		return nil, classify(err, "set task complete", "task", fmt.Sprintf("%d", id))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.NewStorageError("commit set task complete", err)
	}
	return t, nil
}

// DeleteTask deletes a task by ID.
func (r *PgRepository) DeleteTask(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStorageError("delete task", err)
	}
	return requireAffected(tag.RowsAffected(), "task", fmt.Sprintf("%d", id))
}
