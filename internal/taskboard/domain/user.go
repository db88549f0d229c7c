package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

const (
	DefaultProfilePhoto = "default.jpg"
	MinPasswordLen      = 8
)

type User struct {
	ID                idx.ID
	Name              string
	Email             string
	PasswordHash      string // argon2id, or bcrypt for legacy accounts
	Role              Role
	ProfilePhoto      string
	PasswordChangedAt *time.Time
	Tasks             []idx.ID // derived from tasks.owner_id
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PasswordChangedSince reports whether the password was changed after a token
// issued at iat. Both sides are compared at second precision.
func (u User) PasswordChangedSince(iat time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return iat.Unix() < u.PasswordChangedAt.Unix()
}

// OwnsTask reports whether id is one of the user's tasks.
func (u User) OwnsTask(id idx.ID) bool {
	for _, t := range u.Tasks {
		if t == id {
			return true
		}
	}
	return false
}

// PasswordChangeStamp is the PasswordChangedAt recorded for a change at now.
// It is backdated a second so a token signed in the same instant stays valid.
func PasswordChangeStamp(now time.Time) time.Time {
	return now.Add(-time.Second).UTC()
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return Invalid("name", "A user must have a name")
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return Invalid("email", "A user must have an email address")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Invalid("email", "Please provide a valid email address")
	}
	return nil
}

func ValidatePassword(password, confirm string) error {
	var errs []error
	switch {
	case password == "":
		errs = append(errs, Invalid("password", "A user must have a password"))
	case len(password) < MinPasswordLen:
		errs = append(errs, Invalid("password", "Password must be at least 8 characters"))
	}
	switch {
	case confirm == "":
		errs = append(errs, Invalid("passwordConfirm", "A user must confirm their password"))
	case confirm != password:
		errs = append(errs, Invalid("passwordConfirm", "Passwords are not the same"))
	}
	return errors.Join(errs...)
}
