package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// sessionCookie controls the "token" cookie written next to every issued
// token.
type sessionCookie struct {
	TTL    time.Duration
	Secure bool
}

func (c sessionCookie) set(w http.ResponseWriter, token string) {
	httpx.SetSessionCookie(w, token, c.TTL, c.Secure)
}

func (c sessionCookie) clear(w http.ResponseWriter) {
	httpx.ClearSessionCookie(w, c.Secure)
}

type AuthHandler struct {
	AuthService *service.AuthService
	cookie      sessionCookie
	errs        errorWriter
}

// HandleSignUp registers a new user.
//
//	@Summary		Sign up
//	@Description	Creates a regular user and signs them in. Any role in the body is ignored. The token is also set as the "token" cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.SignUpRequest	true	"New account"
//	@Success		201		{object}	tasksdk.Response[tasksdk.SessionResponse]
//	@Failure		400		{object}	tasksdk.ErrorResponse	"Validation failed or email already taken"
//	@Failure		429		{object}	tasksdk.ErrorResponse
//	@Router			/api/v1/auth/signup [post].
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.SignUpRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.AuthService.SignUp(r.Context(), signUpInput(req))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.cookie.set(w, sess.Token)
	httpx.WriteSuccess(w, http.StatusCreated, toSDKSession(sess))
}

// HandleLogin exchanges credentials for a token.
//
//	@Summary		Log in
//	@Description	Checks an email and password. The token is also set as the "token" cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	tasksdk.Response[tasksdk.SessionResponse]
//	@Failure		400		{object}	tasksdk.ErrorResponse	"Missing fields or bad credentials"
//	@Failure		429		{object}	tasksdk.ErrorResponse
//	@Router			/api/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.cookie.set(w, sess.Token)
	httpx.WriteSuccess(w, http.StatusOK, toSDKSession(sess))
}

// HandleLogout clears the session cookie.
//
//	@Summary	Log out
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	tasksdk.Response[any]
//	@Router		/api/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.cookie.clear(w)
	httpx.WriteSuccess(w, http.StatusOK, nil)
}
