package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are reached through methods so a Tx can
// hand out repositories bound to the transaction, and a Tx cannot open
// another one.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user with its derived task list.
	GetUserByID(ctx context.Context, id idx.ID) (domain.User, error)

	// GetUserByEmail expects an already normalised email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns every user, oldest first, with derived task lists.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// A taken email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUserProfile writes name, email and profile photo and bumps
	// updated_at.
	UpdateUserProfile(ctx context.Context, u domain.User) error

	// UpdatePasswordHash replaces the hash. A nil changedAt leaves
	// password_changed_at untouched (used when upgrading a legacy hash).
	UpdatePasswordHash(ctx context.Context, id idx.ID, hash string, changedAt *time.Time) error

	// DeleteUser cascades to the user's tasks (per schema).
	DeleteUser(ctx context.Context, id idx.ID) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Tasks interface {
	GetTaskByID(ctx context.Context, id idx.ID) (domain.Task, error)

	// ListTasks returns the tasks matching f in f.Sort order.
	ListTasks(ctx context.Context, f TaskFilter) ([]domain.Task, error)

	CreateTask(ctx context.Context, t domain.Task) error

	// UpdateTask overwrites every mutable column of the stored row with t.
	UpdateTask(ctx context.Context, t domain.Task) error

	DeleteTask(ctx context.Context, id idx.ID) error

	// DeleteOwnedTasks deletes the tasks in ids that belong to owner and
	// returns how many rows went.
	DeleteOwnedTasks(ctx context.Context, owner idx.ID, ids []idx.ID) (int64, error)
}

// TaskFilter narrows ListTasks. Zero fields do not filter.
type TaskFilter struct {
	OwnerID  idx.ID
	Priority *int
	Status   *bool
	Sort     TaskSort
}

// TaskSort names a listing order as clients send it.
type TaskSort string

const (
	SortNewest       TaskSort = "" // created_at descending
	SortStartTimeAsc TaskSort = "startTimeAsc"
	SortStartTimeDsc TaskSort = "startTimeDesc"
	SortEndTimeAsc   TaskSort = "endTimeAsc"
	SortEndTimeDesc  TaskSort = "endTimeDesc"
	SortInsertion    TaskSort = "insertion"
)

// ParseTaskSort maps a client sort key. An empty key is the newest-first
// default and an unknown key falls back to insertion order.
func ParseTaskSort(s string) TaskSort {
	switch ts := TaskSort(s); ts {
	case SortNewest, SortStartTimeAsc, SortStartTimeDsc, SortEndTimeAsc, SortEndTimeDesc:
		return ts
	default:
		return SortInsertion
	}
}

// OrderBy is the SQL ORDER BY clause for s. Ids are ULIDs, so ordering by id
// is insertion order and breaks ties deterministically.
func (s TaskSort) OrderBy() string {
	switch s {
	case SortNewest:
		return "created_at DESC, id DESC"
	case SortStartTimeAsc:
		return "start_time ASC, id ASC"
	case SortStartTimeDsc:
		return "start_time DESC, id ASC"
	case SortEndTimeAsc:
		return "end_time ASC, id ASC"
	case SortEndTimeDesc:
		return "end_time DESC, id ASC"
	default:
		return "id ASC"
	}
}
