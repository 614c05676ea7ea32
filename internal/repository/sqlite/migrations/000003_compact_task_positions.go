package migrations

import (
	"database/sql"
	"fmt"
)

func init() {
	RegisterGoMigration(3, Up_000003_compact_task_positions, Down_000003_compact_task_positions)
}

// Up_000003_compact_task_positions renumbers the positions of every list to
// 1..n, keeping the current (position, id) order. Each toggle moves a task
// to min - 1, so lists used at version 2 drift below zero; new databases
// have no tasks yet and are left as they are.
func Up_000003_compact_task_positions(tx *sql.Tx) error {
	type row struct {
		id     int64
		listID int64
	}
	var rows []row

	rs, err := tx.Query("SELECT id, list_id FROM tasks ORDER BY list_id ASC, position ASC, id ASC")
	if err != nil {
		return fmt.Errorf("failed to query tasks: %w", err)
	}
	for rs.Next() {
		var r row
		if err := rs.Scan(&r.id, &r.listID); err != nil {
			rs.Close()
			return fmt.Errorf("failed to scan task: %w", err)
		}
		rows = append(rows, r)
	}
	if err := rs.Err(); err != nil {
		rs.Close()
		return fmt.Errorf("error iterating tasks: %w", err)
	}
	rs.Close()

	stmt, err := tx.Prepare("UPDATE tasks SET position = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare position update: %w", err)
	}
	defer stmt.Close()

	var currentList int64
	var position int64
	for i, r := range rows {
		if i == 0 || r.listID != currentList {
			currentList = r.listID
			position = 0
		}
		position++
		if _, err := stmt.Exec(position, r.id); err != nil {
			return fmt.Errorf("failed to update position for task %d: %w", r.id, err)
		}
	}

	return nil
}

// Down_000003_compact_task_positions is a no-op: compacted positions are
// valid positions.
func Down_000003_compact_task_positions(tx *sql.Tx) error {
	return nil
}
