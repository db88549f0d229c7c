package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var (
	testSecret = []byte("0123456789abcdef0123456789abcdef")
	testNow    = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "taskboard-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))
	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type fixture struct {
	store     store.Store
	tokens    *TokenIssuer
	verifier  jwtx.Verifier
	clock     Clock
	auth      *AuthService
	users     *UserService
	admins    *AdminService
	tasks     *TaskService
	myTasks   *MyTaskService
	dashboard *DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewSignerHS256("", testSecret)
	require.NoError(t, err)

	f := &fixture{
		store:    st,
		tokens:   &TokenIssuer{Signer: signer, Issuer: "taskboard-test", TTL: time.Hour},
		verifier: jwtx.NewVerifierHS256(testSecret, "taskboard-test"),
		clock:    func() time.Time { return testNow },
	}
	f.auth = &AuthService{Store: st, Tokens: f.tokens, Clock: f.clock}
	f.users = &UserService{Store: st, Tokens: f.tokens, Clock: f.clock}
	f.admins = &AdminService{Users: f.users}
	f.tasks = &TaskService{Store: st, Clock: f.clock}
	f.myTasks = &MyTaskService{Store: st, Clock: f.clock}
	f.dashboard = &DashboardService{Store: st, Clock: f.clock}
	return f
}

func (f *fixture) signUp(t *testing.T, email string) domain.User {
	t.Helper()
	sess, err := f.auth.SignUp(context.Background(), SignUpInput{
		Name:            "Test User",
		Email:           email,
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	require.NoError(t, err)
	return sess.User
}

// reload re-reads u so its derived task list is current.
func (f *fixture) reload(t *testing.T, u domain.User) domain.User {
	t.Helper()
	u, err := f.store.Users().GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	return u
}

func (f *fixture) createTask(t *testing.T, u domain.User, title string, start time.Time, hours int, priority int, done bool) domain.Task {
	t.Helper()
	end := start.Add(time.Duration(hours) * time.Hour)
	task, err := f.myTasks.Create(context.Background(), u, CreateTaskInput{
		Title:      title,
		StartTime:  &start,
		EndTime:    &end,
		Priority:   &priority,
		TaskStatus: &done,
	})
	require.NoError(t, err)
	return task
}

func ptr[T any](v T) *T { return &v }
