package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	require.NoError(t, domain.ValidateEmail("alice@example.com"))

	for _, email := range []string{"", "alice", "Alice <alice@example.com>", "alice example.com"} {
		err := domain.ValidateEmail(email)
		require.ErrorIs(t, err, domain.ErrValidation, email)
	}
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "alice@example.com", domain.NormalizeEmail("  Alice@Example.COM "))
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, domain.ValidatePassword("correct horse", "correct horse"))

	err := domain.ValidatePassword("short", "short")
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Contains(t, domain.ValidationMessage(err), "at least 8")

	err = domain.ValidatePassword("longenough", "different!")
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Contains(t, domain.ValidationMessage(err), "Passwords are not the same")

	err = domain.ValidatePassword("", "")
	require.Equal(t,
		"Invalid input data. A user must have a password. A user must confirm their password",
		domain.ValidationMessage(err))
}

func TestValidateName(t *testing.T) {
	require.NoError(t, domain.ValidateName("Alice"))
	require.ErrorIs(t, domain.ValidateName("  "), domain.ErrValidation)
}

func TestPasswordChangedSince(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var u domain.User
	require.False(t, u.PasswordChangedSince(issued), "never changed")

	changed := issued.Add(time.Minute)
	u.PasswordChangedAt = &changed
	require.True(t, u.PasswordChangedSince(issued))

	before := issued.Add(-time.Minute)
	u.PasswordChangedAt = &before
	require.False(t, u.PasswordChangedSince(issued))

	// A token signed at the moment of the change survives the backdated stamp.
	stamp := domain.PasswordChangeStamp(issued)
	u.PasswordChangedAt = &stamp
	require.False(t, u.PasswordChangedSince(issued))
}

func TestOwnsTask(t *testing.T) {
	a, b := idx.New(), idx.New()
	u := domain.User{Tasks: []idx.ID{a}}
	require.True(t, u.OwnsTask(a))
	require.False(t, u.OwnsTask(b))
}

func TestRoleValid(t *testing.T) {
	require.True(t, domain.RoleUser.Valid())
	require.True(t, domain.RoleAdmin.Valid())
	require.False(t, domain.Role("root").Valid())
}
