package tasksdk

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, code int, status string, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	body := map[string]any{"status": status, "data": data}
	if message != "" {
		body["message"] = message
	}
	_ = json.NewEncoder(w).Encode(body)
}

func TestLoginAndAuthenticatedCall(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "password123" {
			writeEnvelope(w, http.StatusBadRequest, "fail", nil, "Invalid email or password!")
			return
		}
		writeEnvelope(w, http.StatusOK, "success", SessionResponse{
			User:  User{ID: "u1", Email: req.Email, Role: "user"},
			Token: "tok-1",
		}, "")
	})
	mux.HandleFunc("GET /api/v1/tasks/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "startTimeAsc", r.URL.Query().Get("sort"))
		assert.Equal(t, "2", r.URL.Query().Get("priority"))
		assert.Equal(t, "false", r.URL.Query().Get("status"))
		writeEnvelope(w, http.StatusOK, "success", []Task{{ID: "t1", Priority: 2}}, "")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL + "/")

	_, err := client.Login(t.Context(), "alice@example.com", "nope")
	require.Error(t, err)
	require.True(t, IsStatus(err, http.StatusBadRequest))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Invalid email or password!", apiErr.Message)
	require.Equal(t, "fail", apiErr.Status)

	session, err := client.Login(t.Context(), "alice@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "tok-1", session.Token())
	require.Equal(t, "u1", session.User().ID)

	priority, status := 2, false
	tasks, err := session.ListMyTasks(t.Context(), ListTasksOptions{Sort: "startTimeAsc", Priority: &priority, Status: &status})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "t1", tasks[0].ID)
}

func TestUpdatePasswordSwapsToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/updatepassword", r.URL.Path)
		assert.Equal(t, "Bearer old", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, "success", SessionResponse{User: User{ID: "u1"}, Token: "new"}, "")
	}))
	defer srv.Close()

	session := NewClient(srv.URL).NewSession("old", User{ID: "u1"})
	require.NoError(t, session.UpdatePassword(t.Context(), UpdatePasswordRequest{
		OldPassword: "a", NewPassword: "b", PasswordConfirm: "b",
	}))
	require.Equal(t, "new", session.Token())
}

func TestPlainTextErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "route does not exist")
	}))
	defer srv.Close()

	session := NewClient(srv.URL).NewSession("tok", User{})
	err := session.DeleteTask(t.Context(), "x")
	require.True(t, IsStatus(err, http.StatusNotFound))
	require.Contains(t, err.Error(), "route does not exist")
}

func TestBootstrapRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, BootstrapRequest{
		AdminName:     "Admin",
		AdminEmail:    "admin@example.com",
		AdminPassword: "password123",
	}.Validate())

	errs := BootstrapRequest{AdminEmail: "nope", AdminPassword: "short"}.Validate()
	require.Equal(t, map[string]string{
		"admin_name":     "required",
		"admin_email":    "not a valid email address",
		"admin_password": "too short (min 8)",
	}, errs)
}
