package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// MeHandler serves the authenticated user's own account.
type MeHandler struct {
	AuthService *service.AuthService
	cookie      sessionCookie
	errs        errorWriter
}

// HandleMe returns the current user.
//
//	@Summary	Current user
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	tasksdk.Response[tasksdk.User]
//	@Failure	401	{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/users/me [get].
func (h *MeHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, _ := userFromContext(r.Context())
	httpx.WriteSuccess(w, http.StatusOK, toSDKUser(u))
}

// HandleUpdatePassword changes the caller's password and reissues the token.
//
//	@Summary		Update password
//	@Description	Requires the current password. Tokens issued before the change are rejected afterwards.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.UpdatePasswordRequest	true	"Passwords"
//	@Success		200		{object}	tasksdk.Response[tasksdk.SessionResponse]
//	@Failure		400		{object}	tasksdk.ErrorResponse	"Wrong current password or invalid new password"
//	@Failure		401		{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/users/updatepassword [patch].
func (h *MeHandler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.UpdatePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, _ := userFromContext(r.Context())
	sess, err := h.AuthService.UpdatePassword(r.Context(), u, service.UpdatePasswordInput{
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.cookie.set(w, sess.Token)
	httpx.WriteSuccess(w, http.StatusOK, toSDKSession(sess))
}

// UsersHandler is the admin user management API.
type UsersHandler struct {
	UserService  *service.UserService
	AdminService *service.AdminService
	errs         errorWriter
}

// HandleList lists every user.
//
//	@Summary	List users
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{object}	tasksdk.Response[[]tasksdk.User]
//	@Failure	403	{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteList(w, toSDKUsers(users), len(users))
}

// HandleCreate creates a regular user.
//
//	@Summary		Create user
//	@Description	Any role in the body is ignored. The returned token belongs to the new user; no cookie is set.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.CreateUserRequest	true	"New account"
//	@Success		201		{object}	tasksdk.Response[tasksdk.SessionResponse]
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sess, err := h.UserService.Create(r.Context(), signUpInput(req))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, toSDKSession(sess))
}

// HandleCreateAdmin creates an administrator.
//
//	@Summary	Create admin
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		tasksdk.CreateUserRequest	true	"New account"
//	@Success	201		{object}	tasksdk.Response[tasksdk.SessionResponse]
//	@Failure	400		{object}	tasksdk.ErrorResponse
//	@Failure	403		{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/admins [post].
func (h *UsersHandler) HandleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sess, err := h.AdminService.Create(r.Context(), signUpInput(req))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, toSDKSession(sess))
}

// HandleGet fetches one user.
//
//	@Summary	Get user
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	tasksdk.Response[tasksdk.User]
//	@Failure	404	{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	u, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, toSDKUser(u))
}

// HandleUpdate patches a user's name, email or photo.
//
//	@Summary		Update user
//	@Description	Role and password cannot be changed here. Returns a fresh token for the user.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User id"
//	@Param			request	body		tasksdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	tasksdk.Response[tasksdk.SessionResponse]
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		404		{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/users/{id} [patch].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req tasksdk.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sess, err := h.UserService.Update(r.Context(), id, service.UpdateUserInput{
		Name:         req.Name,
		Email:        req.Email,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, toSDKSession(sess))
}

// HandleDelete removes a user and their tasks.
//
//	@Summary	Delete user
//	@Tags		Admin
//	@Param		id	path	string	true	"User id"
//	@Success	204
//	@Failure	404	{object}	tasksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.UserService.Delete(r.Context(), id); err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteNoContent(w)
}
