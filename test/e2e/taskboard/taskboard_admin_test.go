package taskboard_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestAdminRequired verifies regular users cannot reach admin routes.
func TestAdminRequired(t *testing.T) {
	client := setupContainer(t)
	ctx := context.Background()
	user := signUp(t, client, "Grace", "grace@example.com")

	_, err := user.ListUsers(ctx)
	assertStatus(t, err, http.StatusForbidden, "List users as a regular user")

	_, err = user.ListTasks(ctx)
	assertStatus(t, err, http.StatusForbidden, "List tasks as a regular user")
}

// TestAdminManagesUsers covers the admin user endpoints.
func TestAdminManagesUsers(t *testing.T) {
	client := setupContainer(t)
	ctx := context.Background()
	admin := bootstrapAdmin(t, client)

	created, err := admin.CreateUser(ctx, tasksdk.CreateUserRequest{
		Name:            "Heidi",
		Email:           "heidi@example.com",
		Password:        userPassword,
		PasswordConfirm: userPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "user", created.User.Role)

	second, err := admin.CreateAdmin(ctx, tasksdk.CreateUserRequest{
		Name:            "Ivan",
		Email:           "ivan@example.com",
		Password:        userPassword,
		PasswordConfirm: userPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "admin", second.User.Role)

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	name := "Heidi Renamed"
	updated, err := admin.UpdateUser(ctx, created.User.ID, tasksdk.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, name, updated.User.Name)

	require.NoError(t, admin.DeleteUser(ctx, created.User.ID))

	_, err = admin.GetUser(ctx, created.User.ID)
	assertStatus(t, err, http.StatusNotFound, "Deleted user")
}

// TestAdminManagesTasks covers the admin task endpoints.
func TestAdminManagesTasks(t *testing.T) {
	client := setupContainer(t)
	ctx := context.Background()
	admin := bootstrapAdmin(t, client)
	owner := signUp(t, client, "Judy", "judy@example.com")

	start := time.Now().UTC()
	end := start.Add(2 * time.Hour)
	task, err := admin.CreateTask(ctx, tasksdk.CreateTaskRequest{
		Title:     "Assigned",
		StartTime: &start,
		EndTime:   &end,
		Owner:     owner.User().ID,
	})
	require.NoError(t, err)
	require.Equal(t, owner.User().ID, task.Owner)

	mine, err := owner.ListMyTasks(ctx, tasksdk.ListTasksOptions{})
	require.NoError(t, err)
	require.Len(t, mine, 1)

	title := "Reassigned title"
	updated, err := admin.UpdateTask(ctx, task.ID, tasksdk.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)

	all, err := admin.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, admin.DeleteTask(ctx, task.ID))

	_, err = admin.GetTask(ctx, task.ID)
	assertStatus(t, err, http.StatusNotFound, "Deleted task")
}
