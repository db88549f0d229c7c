package tasksdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListMyTasks returns the caller's tasks.
func (s *Session) ListMyTasks(ctx context.Context, opts ListTasksOptions) ([]Task, error) {
	q := url.Values{}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Priority != nil {
		q.Set("priority", strconv.Itoa(*opts.Priority))
	}
	if opts.Status != nil {
		q.Set("status", strconv.FormatBool(*opts.Status))
	}
	path := "/api/v1/tasks/me"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]Task](resp, http.StatusOK)
}

// CreateMyTask creates a task owned by the caller.
func (s *Session) CreateMyTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/tasks/me", req)
	if err != nil {
		return nil, err
	}
	t, err := decodeData[Task](resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) UpdateMyTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/api/v1/tasks/me/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	t, err := decodeData[Task](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) DeleteMyTask(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/v1/tasks/me/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}

// DeleteSelected deletes several of the caller's tasks. Either all of them
// go or none do.
func (s *Session) DeleteSelected(ctx context.Context, ids []string) (int64, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/tasks/delete-selected", DeleteSelectedRequest{IDs: ids})
	if err != nil {
		return 0, err
	}
	out, err := decodeData[DeleteSelectedResponse](resp, http.StatusOK)
	if err != nil {
		return 0, err
	}
	return out.DeletedCount, nil
}

// Dashboard returns the caller's task statistics.
func (s *Session) Dashboard(ctx context.Context) (*Dashboard, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/tasks/dashboard", nil)
	if err != nil {
		return nil, err
	}
	d, err := decodeData[Dashboard](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
