package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// MyTasksHandler serves the caller's own tasks and dashboard.
type MyTasksHandler struct {
	MyTaskService    *service.MyTaskService
	DashboardService *service.DashboardService
	errs             errorWriter
}

// HandleList lists the caller's tasks.
//
//	@Summary		List my tasks
//	@Description	Newest first unless sort is given. An unrecognised sort value lists in creation order.
//	@Tags			Tasks
//	@Produce		json
//	@Param			sort		query		string	false	"Sort order"	Enums(startTimeAsc, startTimeDesc, endTimeAsc, endTimeDesc)
//	@Param			priority	query		int		false	"Only this priority (1-5)"
//	@Param			status		query		bool	false	"Only completed (true) or pending (false)"
//	@Success		200			{object}	tasksdk.Response[[]tasksdk.Task]
//	@Failure		400			{object}	tasksdk.ErrorResponse	"Bad filter value"
//	@Failure		401			{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/tasks/me [get].
func (h *MyTasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := service.MyTaskQuery{Sort: q.Get("sort")}

	if raw := q.Get("priority"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || !domain.ValidPriority(p) {
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid priority: "+raw)
			return
		}
		query.Priority = &p
	}
	if raw := q.Get("status"); raw != "" {
		var done bool
		switch raw {
		case "true":
			done = true
		case "false":
		default:
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid status: "+raw)
			return
		}
		query.Status = &done
	}

	u, _ := userFromContext(r.Context())
	tasks, err := h.MyTaskService.List(r.Context(), u.ID, query)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteList(w, toSDKTasks(tasks), len(tasks))
}

// HandleCreate creates a task owned by the caller.
//
//	@Summary		Create my task
//	@Description	The owner field is ignored.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.CreateTaskRequest	true	"Task"
//	@Success		201		{object}	tasksdk.Response[tasksdk.Task]
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		401		{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/tasks/me [post].
func (h *MyTasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.CreateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, _ := userFromContext(r.Context())
	t, err := h.MyTaskService.Create(r.Context(), u, createTaskInput(req))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, toSDKTask(t))
}

// HandleUpdate patches one of the caller's tasks.
//
//	@Summary	Update my task
//	@Tags		Tasks
//	@Accept		json
//	@Produce	json
//	@Param		taskId	path		string						true	"Task id"
//	@Param		request	body		tasksdk.UpdateTaskRequest	true	"Fields to change"
//	@Success	200		{object}	tasksdk.Response[tasksdk.Task]
//	@Failure	400		{object}	tasksdk.ErrorResponse	"Not your task or invalid fields"
//	@Failure	401		{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/tasks/me/{taskId} [patch].
func (h *MyTasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.UpdateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, _ := userFromContext(r.Context())
	t, err := h.MyTaskService.Update(r.Context(), u, r.PathValue("taskId"), updateTaskInput(req))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, toSDKTask(t))
}

// HandleDelete removes one of the caller's tasks.
//
//	@Summary	Delete my task
//	@Tags		Tasks
//	@Produce	json
//	@Param		taskId	path		string	true	"Task id"
//	@Success	200		{object}	tasksdk.Response[any]
//	@Failure	400		{object}	tasksdk.ErrorResponse	"Not your task"
//	@Failure	401		{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/tasks/me/{taskId} [delete].
func (h *MyTasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	u, _ := userFromContext(r.Context())
	if err := h.MyTaskService.Delete(r.Context(), u, r.PathValue("taskId")); err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, nil)
}

// HandleDeleteSelected removes several of the caller's tasks at once.
//
//	@Summary		Delete selected tasks
//	@Description	All or nothing: if any id is not the caller's, nothing is deleted and the offending ids are listed.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.DeleteSelectedRequest	true	"Task ids"
//	@Success		200		{object}	tasksdk.Response[tasksdk.DeleteSelectedResponse]
//	@Failure		400		{object}	tasksdk.ErrorResponse	"Empty id list or foreign ids"
//	@Failure		404		{object}	tasksdk.ErrorResponse	"Nothing deleted"
//	@Security		BearerAuth
//	@Router			/api/v1/tasks/delete-selected [post].
func (h *MyTasksHandler) HandleDeleteSelected(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.DeleteSelectedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, _ := userFromContext(r.Context())
	n, err := h.MyTaskService.DeleteSelected(r.Context(), u.ID, req.IDs)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, tasksdk.DeleteSelectedResponse{DeletedCount: n})
}

// HandleDashboard returns the caller's task statistics.
//
//	@Summary		Dashboard
//	@Description	Totals, average completion time and a per-priority breakdown of pending work, in hours.
//	@Tags			Tasks
//	@Produce		json
//	@Success		200	{object}	tasksdk.Response[tasksdk.Dashboard]
//	@Failure		401	{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/tasks/dashboard [get].
func (h *MyTasksHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	u, _ := userFromContext(r.Context())
	d, err := h.DashboardService.Summary(r.Context(), u.ID)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, d)
}
