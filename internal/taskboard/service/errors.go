package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingCredentials = errors.New("missing_credentials")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUserGone           = errors.New("user_gone")
	ErrStaleCredential    = errors.New("stale_credential")
	ErrWrongPassword      = errors.New("wrong_password")
	ErrNotOwner           = errors.New("not_owner")
	ErrNoTaskIDs          = errors.New("no_task_ids")
	ErrNoTasksDeleted     = errors.New("no_tasks_deleted")
)

// NotOwnerError is returned when a caller acts on tasks outside their own
// task list. IDs is only set for bulk operations and lists every offender.
type NotOwnerError struct {
	Op  string // "update" or "delete"
	IDs []string
}

func (e *NotOwnerError) Error() string {
	if len(e.IDs) > 0 {
		return fmt.Sprintf("You cannot %s tasks that don't belong to you: %s", e.Op, strings.Join(e.IDs, ", "))
	}
	return fmt.Sprintf("You cannot %s tasks that dont belong to you", e.Op)
}

func (e *NotOwnerError) Unwrap() error { return ErrNotOwner }
