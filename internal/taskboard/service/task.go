package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// TaskService is the administrative view over every task in the system.
type TaskService struct {
	Store store.Store
	Clock Clock
}

// List returns every task in insertion order.
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasks(ctx, store.TaskFilter{Sort: store.SortInsertion})
}

func (s *TaskService) Get(ctx context.Context, id idx.ID) (domain.Task, error) {
	return s.Store.Tasks().GetTaskByID(ctx, id)
}

// Create stores a task for in.Owner, which must be an existing user.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (domain.Task, error) {
	t, err := newTask(in, in.Owner, s.Clock.Now())
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.ensureOwner(ctx, s.Store, t.OwnerID); err != nil {
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

// Update patches any task, including moving it to another owner.
func (s *TaskService) Update(ctx context.Context, id idx.ID, in UpdateTaskInput) (domain.Task, error) {
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
		if in.Owner != nil {
			if err := s.ensureOwner(ctx, tx, t.OwnerID); err != nil {
				return err
			}
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

func (s *TaskService) Delete(ctx context.Context, id idx.ID) error {
	return s.Store.Tasks().DeleteTask(ctx, id)
}

func (s *TaskService) ensureOwner(ctx context.Context, st store.Store, owner idx.ID) error {
	_, err := st.Users().GetUserByID(ctx, owner)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Invalid("owner", "There is no user with that owner id")
	}
	return err
}

// newTask validates in and builds an unsaved task owned by owner. Missing
// start times default to now and a missing priority to the lowest.
func newTask(in CreateTaskInput, owner idx.ID, now time.Time) (domain.Task, error) {
	t := domain.Task{
		ID:        idx.NewAt(now),
		Title:     in.Title,
		StartTime: now,
		Priority:  domain.DefaultPriority,
		OwnerID:   owner,
		CreatedAt: now,
	}
	if in.StartTime != nil {
		t.StartTime = in.StartTime.UTC()
	}
	if in.EndTime != nil {
		t.EndTime = in.EndTime.UTC()
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.TaskStatus != nil {
		t.TaskStatus = *in.TaskStatus
	}
	if err := t.Validate(); err != nil {
		return domain.Task{}, err
	}
	t.Derive()
	return t, nil
}

func (in UpdateTaskInput) apply(t *domain.Task) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.StartTime != nil {
		t.StartTime = in.StartTime.UTC()
	}
	if in.EndTime != nil {
		t.EndTime = in.EndTime.UTC()
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.TaskStatus != nil {
		t.TaskStatus = *in.TaskStatus
	}
	if in.Owner != nil {
		t.OwnerID = *in.Owner
	}
}
