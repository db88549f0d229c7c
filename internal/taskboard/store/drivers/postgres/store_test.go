package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/drivers/postgres"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// These tests need Docker; set TASKBOARD_POSTGRES_TESTS=1 to run them.
func newStore(t *testing.T) *postgres.Store {
	t.Helper()
	if os.Getenv("TASKBOARD_POSTGRES_TESTS") != "1" {
		t.Skip("set TASKBOARD_POSTGRES_TESTS=1 to run postgres driver tests")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "taskboard",
			"POSTGRES_PASSWORD": "taskboard",
			"POSTGRES_DB":       "taskboard",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://taskboard:taskboard@%s:%s/taskboard?sslmode=disable", host, port.Port())
	s, err := postgres.NewStore(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations(), "second run is a no-op")
	return s
}

func TestPostgresStore(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	alice := domain.User{
		ID:           idx.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
		ProfilePhoto: domain.DefaultProfilePhoto,
		CreatedAt:    base,
		UpdatedAt:    base,
	}
	require.NoError(t, s.Users().CreateUser(ctx, alice))

	dup := alice
	dup.ID = idx.New()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	var ids []idx.ID
	for i, p := range []int{1, 3, 1} {
		task := domain.Task{
			ID:         idx.New(),
			Title:      fmt.Sprintf("task %d", i),
			StartTime:  base.Add(time.Duration(i) * time.Hour),
			EndTime:    base.Add(time.Duration(i+2) * time.Hour),
			Priority:   p,
			TaskStatus: i == 1,
			OwnerID:    alice.ID,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		task.Derive()
		require.NoError(t, s.Tasks().CreateTask(ctx, task))
		ids = append(ids, task.ID)
	}

	got, err := s.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, ids, got.Tasks)

	one := 1
	tasks, err := s.Tasks().ListTasks(ctx, store.TaskFilter{OwnerID: alice.ID, Priority: &one, Sort: store.SortStartTimeDsc})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, ids[2], tasks[0].ID)
	require.Equal(t, 2.0, tasks[0].TimeToFinish)

	changed := base.Add(time.Hour)
	require.NoError(t, s.Users().UpdatePasswordHash(ctx, alice.ID, "new", &changed))
	got, err = s.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, got.PasswordChangedAt.Equal(changed))

	err = s.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Tasks().DeleteOwnedTasks(ctx, alice.ID, ids[:2])
		require.NoError(t, err)
		require.EqualValues(t, 2, n)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, s.Users().DeleteUser(ctx, alice.ID))
	_, err = s.Tasks().GetTaskByID(ctx, ids[2])
	require.ErrorIs(t, err, store.ErrNotFound)
}
