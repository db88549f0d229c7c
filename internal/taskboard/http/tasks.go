package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// TasksHandler is the admin task API over every user's tasks.
type TasksHandler struct {
	TaskService *service.TaskService
	errs        errorWriter
}

// HandleList lists every task in insertion order.
//
//	@Summary	List all tasks
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{object}	tasksdk.Response[[]tasksdk.Task]
//	@Failure	403	{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.List(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteList(w, toSDKTasks(tasks), len(tasks))
}

// HandleCreate creates a task for any existing user.
//
//	@Summary	Create task
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		tasksdk.CreateTaskRequest	true	"Task, owner required"
//	@Success	201		{object}	tasksdk.Response[tasksdk.Task]
//	@Failure	400		{object}	tasksdk.ErrorResponse
//	@Failure	403		{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.CreateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	t, err := h.TaskService.Create(r.Context(), createTaskInput(req))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, toSDKTask(t))
}

// HandleGet fetches one task.
//
//	@Summary	Get task
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path		string	true	"Task id"
//	@Success	200	{object}	tasksdk.Response[tasksdk.Task]
//	@Failure	404	{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	t, err := h.TaskService.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, toSDKTask(t))
}

// HandleUpdate patches any task, including its owner.
//
//	@Summary	Update task
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Task id"
//	@Param		request	body		tasksdk.UpdateTaskRequest	true	"Fields to change"
//	@Success	200		{object}	tasksdk.Response[tasksdk.Task]
//	@Failure	400		{object}	tasksdk.ErrorResponse
//	@Failure	404		{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/tasks/{id} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req tasksdk.UpdateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	t, err := h.TaskService.Update(r.Context(), id, updateTaskInput(req))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, toSDKTask(t))
}

// HandleDelete removes any task.
//
//	@Summary	Delete task
//	@Tags		Admin
//	@Param		id	path	string	true	"Task id"
//	@Success	204
//	@Failure	404	{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.TaskService.Delete(r.Context(), id); err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteNoContent(w)
}
