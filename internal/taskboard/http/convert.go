package http

import (
	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

func toSDKUser(u domain.User) tasksdk.User {
	tasks := make([]string, len(u.Tasks))
	for i, id := range u.Tasks {
		tasks[i] = id.String()
	}
	return tasksdk.User{
		ID:                u.ID.String(),
		Name:              u.Name,
		Email:             u.Email,
		Role:              string(u.Role),
		ProfilePhoto:      u.ProfilePhoto,
		PasswordChangedAt: u.PasswordChangedAt,
		Tasks:             tasks,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func toSDKUsers(users []domain.User) []tasksdk.User {
	out := make([]tasksdk.User, len(users))
	for i, u := range users {
		out[i] = toSDKUser(u)
	}
	return out
}

func toSDKSession(s service.Session) tasksdk.SessionResponse {
	return tasksdk.SessionResponse{User: toSDKUser(s.User), Token: s.Token}
}

func toSDKTask(t domain.Task) tasksdk.Task {
	return tasksdk.Task{
		ID:           t.ID.String(),
		Title:        t.Title,
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		Priority:     t.Priority,
		TaskStatus:   t.TaskStatus,
		TimeToFinish: t.TimeToFinish,
		Owner:        t.OwnerID.String(),
		CreatedAt:    t.CreatedAt,
	}
}

func toSDKTasks(tasks []domain.Task) []tasksdk.Task {
	out := make([]tasksdk.Task, len(tasks))
	for i, t := range tasks {
		out[i] = toSDKTask(t)
	}
	return out
}

func signUpInput(req tasksdk.SignUpRequest) service.SignUpInput {
	return service.SignUpInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		ProfilePhoto:    req.ProfilePhoto,
	}
}

// Owner ids that do not parse are kept verbatim so they fail the
// owner-exists check rather than silently meaning "no owner".
func parseOwner(raw string) idx.ID {
	if id, err := idx.Parse(raw); err == nil {
		return id
	}
	return idx.ID(raw)
}

func createTaskInput(req tasksdk.CreateTaskRequest) service.CreateTaskInput {
	return service.CreateTaskInput{
		Title:      req.Title,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Priority:   req.Priority,
		TaskStatus: req.TaskStatus,
		Owner:      parseOwner(req.Owner),
	}
}

func updateTaskInput(req tasksdk.UpdateTaskRequest) service.UpdateTaskInput {
	in := service.UpdateTaskInput{
		Title:      req.Title,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Priority:   req.Priority,
		TaskStatus: req.TaskStatus,
	}
	if req.Owner != nil {
		owner := parseOwner(*req.Owner)
		in.Owner = &owner
	}
	return in
}
