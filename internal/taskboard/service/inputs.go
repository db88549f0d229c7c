package service

import (
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

// SignUpInput lists every field a new account may set. Role is absent, so a
// client cannot pick one.
type SignUpInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
	ProfilePhoto    string
}

// CreateUserInput is what an admin supplies to create a user or admin.
type CreateUserInput = SignUpInput

// UpdateUserInput is an admin patch of a user. Role and password are not
// patchable.
type UpdateUserInput struct {
	Name         *string
	Email        *string
	ProfilePhoto *string
}

type UpdatePasswordInput struct {
	OldPassword     string
	NewPassword     string
	PasswordConfirm string
}

// CreateTaskInput creates a task. Owner is only honoured on the admin path;
// the caller always owns tasks created through MyTaskService.
type CreateTaskInput struct {
	Title      string
	StartTime  *time.Time
	EndTime    *time.Time
	Priority   *int
	TaskStatus *bool
	Owner      idx.ID
}

// UpdateTaskInput patches a task. timeToFinish is derived and never accepted.
type UpdateTaskInput struct {
	Title      *string
	StartTime  *time.Time
	EndTime    *time.Time
	Priority   *int
	TaskStatus *bool
	Owner      *idx.ID
}

// MyTaskQuery narrows a listing of the caller's own tasks.
type MyTaskQuery struct {
	Sort     string
	Priority *int
	Status   *bool
}
