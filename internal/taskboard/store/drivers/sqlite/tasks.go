package sqlite

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

type tasksRepo struct {
	db dbtx
}

const taskColumns = `id, title, start_time, end_time, priority, task_status, time_to_finish, owner_id, created_at`

func scanTask(row rowScanner) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.StartTime, &t.EndTime, &t.Priority,
		&t.TaskStatus, &t.TimeToFinish, &t.OwnerID, &t.CreatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}
	t.StartTime = t.StartTime.UTC()
	t.EndTime = t.EndTime.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id idx.ID) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) ListTasks(ctx context.Context, f store.TaskFilter) ([]domain.Task, error) {
	var (
		where []string
		args  []any
	)
	if !f.OwnerID.IsZero() {
		where = append(where, "owner_id = ?")
		args = append(args, f.OwnerID)
	}
	if f.Priority != nil {
		where = append(where, "priority = ?")
		args = append(args, *f.Priority)
	}
	if f.Status != nil {
		where = append(where, "task_status = ?")
		args = append(args, *f.Status)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY ` + f.Sort.OrderBy()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.StartTime.UTC(), t.EndTime.UTC(), t.Priority,
		t.TaskStatus, t.TimeToFinish, t.OwnerID, t.CreatedAt.UTC(),
	)
	return mapWriteError(err)
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, start_time = ?, end_time = ?, priority = ?, task_status = ?,
		     time_to_finish = ?, owner_id = ?
		 WHERE id = ?`,
		t.Title, t.StartTime.UTC(), t.EndTime.UTC(), t.Priority, t.TaskStatus,
		t.TimeToFinish, t.OwnerID, t.ID,
	))
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id idx.ID) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id))
}

func (r *tasksRepo) DeleteOwnedTasks(ctx context.Context, owner idx.ID, ids []idx.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	args := make([]any, 0, len(ids)+1)
	args = append(args, owner)
	for _, id := range ids {
		args = append(args, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE owner_id = ? AND id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
