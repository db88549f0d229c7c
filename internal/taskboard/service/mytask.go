package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// MyTaskService scopes task operations to the calling user. Ownership is
// checked against the caller's task list as loaded at authentication.
type MyTaskService struct {
	Store store.Store
	Clock Clock
}

func (s *MyTaskService) List(ctx context.Context, owner idx.ID, q MyTaskQuery) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasks(ctx, store.TaskFilter{
		OwnerID:  owner,
		Priority: q.Priority,
		Status:   q.Status,
		Sort:     store.ParseTaskSort(q.Sort),
	})
}

// Create stores a task owned by the caller, whatever in.Owner says.
func (s *MyTaskService) Create(ctx context.Context, user domain.User, in CreateTaskInput) (domain.Task, error) {
	t, err := newTask(in, user.ID, s.Clock.Now())
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.Store.Tasks().CreateTask(ctx, t); err != nil {
		return domain.Task{}, err
	}
	slogx.FromContext(ctx).Info("task created",
		slog.String("task_id", t.ID.String()),
		slog.String("owner_id", t.OwnerID.String()),
	)
	return t, nil
}

// Update patches one of the caller's tasks. The owner cannot change here.
func (s *MyTaskService) Update(ctx context.Context, user domain.User, rawID string, in UpdateTaskInput) (domain.Task, error) {
	id, ok := ownedTaskID(user, rawID)
	if !ok {
		return domain.Task{}, &NotOwnerError{Op: "update"}
	}
	in.Owner = nil

	var out domain.Task
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Tasks().GetTaskByID(ctx, id)
		if err != nil {
			return err
		}
		in.apply(&t)
		if err := t.Validate(); err != nil {
			return err
		}
		t.Derive()
		if err := tx.Tasks().UpdateTask(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	return out, err
}

// Delete removes one of the caller's tasks.
func (s *MyTaskService) Delete(ctx context.Context, user domain.User, rawID string) error {
	id, ok := ownedTaskID(user, rawID)
	if !ok {
		return &NotOwnerError{Op: "delete"}
	}
	return s.Store.Tasks().DeleteTask(ctx, id)
}

// DeleteSelected removes several of the caller's tasks at once. If any id is
// not the caller's, nothing is deleted and every offender is reported.
func (s *MyTaskService) DeleteSelected(ctx context.Context, userID idx.ID, rawIDs []string) (int64, error) {
	if len(rawIDs) == 0 {
		return 0, ErrNoTaskIDs
	}

	var deleted int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		owner, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		ids := make([]idx.ID, 0, len(rawIDs))
		var offenders []string
		for _, raw := range rawIDs {
			id, ok := ownedTaskID(owner, raw)
			if !ok {
				offenders = append(offenders, raw)
				continue
			}
			ids = append(ids, id)
		}
		if len(offenders) > 0 {
			return &NotOwnerError{Op: "delete", IDs: offenders}
		}

		deleted, err = tx.Tasks().DeleteOwnedTasks(ctx, owner.ID, ids)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrNoTasksDeleted
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	slogx.FromContext(ctx).Info("tasks deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("count", deleted),
	)
	return deleted, nil
}

func ownedTaskID(user domain.User, raw string) (idx.ID, bool) {
	id, err := idx.Parse(raw)
	if err != nil {
		return "", false
	}
	return id, user.OwnsTask(id)
}
