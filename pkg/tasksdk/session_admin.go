package tasksdk

import (
	"context"
	"net/http"
	"net/url"
)

// Admin operations. The server answers 403 unless the session belongs to an
// admin.

// ============================================================================
// Users
// ============================================================================

func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/users", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]User](resp, http.StatusOK)
}

func (s *Session) GetUser(ctx context.Context, id string) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	u, err := decodeData[User](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser creates a regular user and returns the new user's session data.
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (*SessionResponse, error) {
	return s.createAccount(ctx, "/api/v1/users", req)
}

// CreateAdmin creates an administrator.
func (s *Session) CreateAdmin(ctx context.Context, req CreateUserRequest) (*SessionResponse, error) {
	return s.createAccount(ctx, "/api/v1/admins", req)
}

func (s *Session) createAccount(ctx context.Context, path string, req CreateUserRequest) (*SessionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}
	out, err := decodeData[SessionResponse](resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*SessionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/api/v1/users/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	out, err := decodeData[SessionResponse](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteUser(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/v1/users/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// ============================================================================
// Tasks
// ============================================================================

func (s *Session) ListTasks(ctx context.Context) ([]Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/tasks", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]Task](resp, http.StatusOK)
}

func (s *Session) GetTask(ctx context.Context, id string) (*Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/tasks/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	t, err := decodeData[Task](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask creates a task for req.Owner.
func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/tasks", req)
	if err != nil {
		return nil, err
	}
	t, err := decodeData[Task](resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/api/v1/tasks/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	t, err := decodeData[Task](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) DeleteTask(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/v1/tasks/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}
