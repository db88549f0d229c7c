package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestUserServiceCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.users.Create(ctx, CreateUserInput{
		Name:            "Frank",
		Email:           "frank@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
		ProfilePhoto:    "frank.png",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, sess.User.Role)
	require.Equal(t, "frank.png", sess.User.ProfilePhoto)
	require.NotEmpty(t, sess.Token)

	admin, err := f.admins.Create(ctx, CreateUserInput{
		Name:            "Grace",
		Email:           "grace@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, admin.User.Role)

	users, err := f.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestUserServiceUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.signUp(t, "heidi@example.com")
	f.signUp(t, "ivan@example.com")

	sess, err := f.users.Update(ctx, u.ID, UpdateUserInput{
		Name:  ptr("Heidi H"),
		Email: ptr("Heidi.H@Example.com"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, "Heidi H", sess.User.Name)
	require.Equal(t, "heidi.h@example.com", sess.User.Email)
	require.Equal(t, domain.RoleUser, sess.User.Role)

	got, err := f.users.Get(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "heidi.h@example.com", got.Email)
	require.Equal(t, u.PasswordHash, got.PasswordHash)

	t.Run("taken email", func(t *testing.T) {
		_, err := f.users.Update(ctx, u.ID, UpdateUserInput{Email: ptr("ivan@example.com")})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("invalid fields", func(t *testing.T) {
		_, err := f.users.Update(ctx, u.ID, UpdateUserInput{Name: ptr(" "), Email: ptr("bad")})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.users.Update(ctx, idx.NewAt(testNow), UpdateUserInput{Name: ptr("x")})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUserServiceDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.signUp(t, "judy@example.com")
	task := f.createTask(t, u, "write report", testNow, 2, 3, false)

	require.NoError(t, f.users.Delete(ctx, u.ID))

	_, err := f.users.Get(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = f.tasks.Get(ctx, task.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, f.users.Delete(ctx, u.ID), store.ErrNotFound)
}
