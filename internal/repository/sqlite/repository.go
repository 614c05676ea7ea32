package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperrors "tasklists/internal/errors"
	"tasklists/internal/repository"
	"tasklists/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements repository.Repository on an embedded sqlite database
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
	now          func() time.Time
}

var _ repository.Repository = (*SQLiteRepository)(nil)

// Option configures a SQLiteRepository
type Option func(*SQLiteRepository)

// WithQueryTimeout bounds every read statement.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *SQLiteRepository) { r.queryTimeout = d }
}

// WithWriteTimeout bounds every write statement.
func WithWriteTimeout(d time.Duration) Option {
	return func(r *SQLiteRepository) { r.writeTimeout = d }
}

// WithClock replaces the timestamp source; used by tests.
func WithClock(now func() time.Time) Option {
	return func(r *SQLiteRepository) { r.now = now }
}

// New opens (or creates) the database at dbPath and applies pending migrations
func New(dbPath string, opts ...Option) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewStorageError("open database", err)
	}
	// sqlite allows a single writer; one connection also keeps :memory: databases intact.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, apperrors.NewStorageError("enable foreign keys", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, apperrors.NewStorageError("run migrations", err)
	}

	r := &SQLiteRepository{
		db:           db,
		queryTimeout: 10 * time.Second,
		writeTimeout: 5 * time.Second,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.writeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.writeTimeout)
}

// inTx runs fn inside a transaction, committing only if fn succeeds.
func (r *SQLiteRepository) inTx(ctx context.Context, operation string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleStorageError("begin "+operation, err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return HandleStorageError("commit "+operation, err)
	}
	return nil
}

// CreateTaskList creates a new task list
func (r *SQLiteRepository) CreateTaskList(ctx context.Context, list *repository.TaskList) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	createdAt := r.now()
	query := `INSERT INTO task_lists (name, created_at) VALUES (?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, list.Name, FormatTimeForDB(createdAt))
	if err != nil {
		return err
	}
	list.ID = id
	list.CreatedAt = createdAt
	return nil
}

// GetTaskList retrieves a task list by ID
func (r *SQLiteRepository) GetTaskList(ctx context.Context, id int64) (*repository.TaskList, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT ` + taskListColumns + ` FROM task_lists WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTaskList, "task list", fmt.Sprintf("%d", id), id)
}

// GetTaskListByName retrieves a task list by its unique name
func (r *SQLiteRepository) GetTaskListByName(ctx context.Context, name string) (*repository.TaskList, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT ` + taskListColumns + ` FROM task_lists WHERE name = ?`
	return QuerySingle(ctx, r.db, query, ScanTaskList, "task list", name, name)
}

// ListTaskLists retrieves all task lists ordered by name
func (r *SQLiteRepository) ListTaskLists(ctx context.Context) ([]*repository.TaskList, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT ` + taskListColumns + ` FROM task_lists ORDER BY name ASC, id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTaskLists, "task lists")
}

// CountTasks returns the number of pending and completed tasks in a list
func (r *SQLiteRepository) CountTasks(ctx context.Context, listID int64) (repository.ListCounts, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	var counts repository.ListCounts
	query := `
	SELECT
		COALESCE(SUM(CASE WHEN is_complete = 0 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN is_complete = 1 THEN 1 ELSE 0 END), 0)
	FROM tasks
	WHERE list_id = ?`
	if err := r.db.QueryRowContext(ctx, query, listID).Scan(&counts.Pending, &counts.Completed); err != nil {
		return counts, HandleStorageError("count tasks", err)
	}
	return counts, nil
}

// UpdateTaskList renames an existing task list
func (r *SQLiteRepository) UpdateTaskList(ctx context.Context, list *repository.TaskList) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `UPDATE task_lists SET name = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task list", fmt.Sprintf("%d", list.ID), list.Name, list.ID)
}

// DeleteTaskList deletes a task list together with its tasks
func (r *SQLiteRepository) DeleteTaskList(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return r.inTx(ctx, "delete task list", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE list_id = ?`, id); err != nil {
			return HandleStorageError("delete tasks of list", err)
		}
		return ExecuteWithRowsAffected(ctx, tx, `DELETE FROM task_lists WHERE id = ?`, "task list", fmt.Sprintf("%d", id), id)
	})
}

// CreateTask appends a new task to the end of its list
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *repository.Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return r.inTx(ctx, "create task", func(tx *sql.Tx) error {
		if err := r.ensureListExists(ctx, tx, task.ListID); err != nil {
			return err
		}

		var position int64
		err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) + 1 FROM tasks WHERE list_id = ?`, task.ListID).Scan(&position)
		if err != nil {
			return HandleStorageError("next task position", err)
		}

		now := r.now()
		query := `
		INSERT INTO tasks (list_id, name, note, is_complete, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
		id, err := ExecuteWithLastInsertID(ctx, tx, query,
			task.ListID, task.Name, task.Note, BoolToDB(task.IsComplete), position,
			FormatTimeForDB(now), FormatTimeForDB(now))
		if err != nil {
			return err
		}

		task.ID = id
		task.Position = position
		task.CreatedAt = now
		task.UpdatedAt = now
		return nil
	})
}

func (r *SQLiteRepository) ensureListExists(ctx context.Context, q queryer, listID int64) error {
	var exists int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM task_lists WHERE id = ?`, listID).Scan(&exists)
	if err != nil {
		if nf := HandleNoRowsError(err, "task list", fmt.Sprintf("%d", listID)); nf != err {
			return nf
		}
		return HandleStorageError("look up task list", err)
	}
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*repository.Task, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves the tasks of a list in display order
func (r *SQLiteRepository) ListTasks(ctx context.Context, listID int64) ([]*repository.Task, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE list_id = ? ORDER BY position ASC, id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", listID)
}

// UpdateTask updates the name and note of an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *repository.Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	now := r.now()
	query := `UPDATE tasks SET name = ?, note = ?, updated_at = ? WHERE id = ?`
	if err := ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID), task.Name, task.Note, FormatTimeForDB(now), task.ID); err != nil {
		return err
	}
	task.UpdatedAt = now
	return nil
}

// SetTaskComplete sets the completion flag and moves the task to the head of its list
func (r *SQLiteRepository) SetTaskComplete(ctx context.Context, id int64, complete bool) (*repository.Task, error) {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	var updated *repository.Task
	err := r.inTx(ctx, "set task complete", func(tx *sql.Tx) error {
		task, err := QuerySingle(ctx, tx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, ScanTask, "task", fmt.Sprintf("%d", id), id)
		if err != nil {
			return err
		}

		var head int64
		err = tx.QueryRowContext(ctx, `SELECT COALESCE(MIN(position), 1) - 1 FROM tasks WHERE list_id = ?`, task.ListID).Scan(&head)
		if err != nil {
			return HandleStorageError("head task position", err)
		}

		now := r.now()
		query := `UPDATE tasks SET is_complete = ?, position = ?, updated_at = ? WHERE id = ?`
		if err := ExecuteWithRowsAffected(ctx, tx, query, "task", fmt.Sprintf("%d", id), BoolToDB(complete), head, FormatTimeForDB(now), id); err != nil {
			return err
		}

		task.IsComplete = complete
		task.Position = head
		task.UpdatedAt = now
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
