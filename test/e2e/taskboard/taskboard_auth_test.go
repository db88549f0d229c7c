package taskboard_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestSignUpAndLogin verifies a new account can sign in and read itself.
func TestSignUpAndLogin(t *testing.T) {
	client := setupContainer(t)
	ctx := context.Background()

	session := signUp(t, client, "Alice", "Alice@Example.com")
	require.Equal(t, "user", session.User().Role)
	require.Equal(t, "alice@example.com", session.User().Email)

	login, err := client.Login(ctx, "alice@example.com", userPassword)
	require.NoError(t, err)

	me, err := login.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, session.User().ID, me.ID)
	require.Empty(t, me.Tasks)
}

// TestLoginFailures verifies bad credentials are rejected without saying why.
func TestLoginFailures(t *testing.T) {
	client := setupContainer(t)
	ctx := context.Background()
	signUp(t, client, "Bob", "bob@example.com")

	_, err := client.Login(ctx, "bob@example.com", "")
	assertStatus(t, err, http.StatusBadRequest, "Login without password")

	_, err = client.Login(ctx, "bob@example.com", "wrong-password")
	assertStatus(t, err, http.StatusBadRequest, "Login with wrong password")

	_, err = client.Login(ctx, "nobody@example.com", userPassword)
	assertStatus(t, err, http.StatusBadRequest, "Login with unknown email")
}

// TestDuplicateEmail verifies emails are unique.
func TestDuplicateEmail(t *testing.T) {
	client := setupContainer(t)
	signUp(t, client, "Carol", "carol@example.com")

	_, err := client.SignUp(context.Background(), tasksdk.SignUpRequest{
		Name:            "Carol Again",
		Email:           "carol@example.com",
		Password:        userPassword,
		PasswordConfirm: userPassword,
	})
	assertStatus(t, err, http.StatusBadRequest, "Duplicate sign up")
}

// TestUpdatePasswordInvalidatesOldToken verifies tokens issued before a
// password change stop working.
func TestUpdatePasswordInvalidatesOldToken(t *testing.T) {
	client := setupContainer(t)
	ctx := context.Background()

	session := signUp(t, client, "Dave", "dave@example.com")
	oldToken := session.Token()

	// Token timestamps have second resolution.
	time.Sleep(2 * time.Second)

	err := session.UpdatePassword(ctx, tasksdk.UpdatePasswordRequest{
		OldPassword:     userPassword,
		NewPassword:     "newpassword123",
		PasswordConfirm: "newpassword123",
	})
	require.NoError(t, err)
	require.NotEqual(t, oldToken, session.Token())

	_, err = session.Me(ctx)
	require.NoError(t, err, "The reissued token should work")

	stale := client.NewSession(oldToken, session.User())
	_, err = stale.Me(ctx)
	assertStatus(t, err, http.StatusUnauthorized, "Token from before the password change")

	_, err = client.Login(ctx, "dave@example.com", "newpassword123")
	require.NoError(t, err)
}

// TestUnauthenticated verifies protected routes need a token.
func TestUnauthenticated(t *testing.T) {
	client := setupContainer(t)

	anon := client.NewSession("", tasksdk.User{})
	_, err := anon.Me(context.Background())
	assertStatus(t, err, http.StatusUnauthorized, "Me without a token")

	forged := client.NewSession("not.a.jwt", tasksdk.User{})
	_, err = forged.Me(context.Background())
	assertStatus(t, err, http.StatusUnauthorized, "Me with a garbage token")
}
