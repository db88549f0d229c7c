package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/jackc/pgx/v5"
)

type tasksRepo struct {
	db dbtx
}

const taskColumns = `id, title, start_time, end_time, priority, task_status, time_to_finish, owner_id, created_at`

func scanTask(row pgx.Row) (domain.Task, error) {
	var (
		t                     domain.Task
		id, owner             string
		priority              int16
		start, end, createdAt time.Time
	)
	err := row.Scan(&id, &t.Title, &start, &end, &priority, &t.TaskStatus, &t.TimeToFinish, &owner, &createdAt)
	if err != nil {
		return domain.Task{}, err
	}
	t.ID = idx.ID(id)
	t.OwnerID = idx.ID(owner)
	t.Priority = int(priority)
	t.StartTime = start.UTC()
	t.EndTime = end.UTC()
	t.CreatedAt = createdAt.UTC()
	return t, nil
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id idx.ID) (domain.Task, error) {
	t, err := scanTask(r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id.String()))
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
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if !f.OwnerID.IsZero() {
		where = append(where, "owner_id = "+arg(f.OwnerID.String()))
	}
	if f.Priority != nil {
		where = append(where, "priority = "+arg(*f.Priority))
	}
	if f.Status != nil {
		where = append(where, "task_status = "+arg(*f.Status))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY ` + f.Sort.OrderBy()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
		return scanTask(row)
	})
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID.String(), t.Title, t.StartTime.UTC(), t.EndTime.UTC(), t.Priority,
		t.TaskStatus, t.TimeToFinish, t.OwnerID.String(), t.CreatedAt.UTC(),
	)
	return mapWriteError(err)
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	return expectOne(r.db.Exec(ctx,
		`UPDATE tasks
		 SET title = $1, start_time = $2, end_time = $3, priority = $4, task_status = $5,
		     time_to_finish = $6, owner_id = $7
		 WHERE id = $8`,
		t.Title, t.StartTime.UTC(), t.EndTime.UTC(), t.Priority, t.TaskStatus,
		t.TimeToFinish, t.OwnerID.String(), t.ID.String(),
	))
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id idx.ID) error {
	return expectOne(r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id.String()))
}

func (r *tasksRepo) DeleteOwnedTasks(ctx context.Context, owner idx.ID, ids []idx.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE owner_id = $1 AND id = ANY($2)`, owner.String(), raw)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
