package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// Client-facing messages.
const (
	msgMissingCredentials = "Please provide email and password!"
	msgInvalidCredentials = "Invalid email or password!"
	msgUserGone           = "The user belonging to this token no longer exists."
	msgStaleCredential    = "This user has changed their password since token issuance. Please login again!"
	msgWrongPassword      = "old password is incorrect!"
	msgNotFound           = "There is no document with that ID"
	msgDuplicate          = "Duplicate field value: email. Please use another value!"
	msgNoTaskIDs          = "Invalid or empty array of IDs"
	msgNoTasksDeleted     = "No tasks found with provided IDs"
	msgInvalidBody        = "Invalid JSON body"
	msgRouteNotFound      = "route does not exist"
)

// errorWriter maps service and store errors to responses. It is the only
// place a status code is picked for an error.
type errorWriter struct {
	// Dev exposes the text of unexpected errors in 500 responses.
	Dev bool
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	var notOwner *service.NotOwnerError

	switch {
	case errors.Is(err, domain.ErrValidation):
		httpx.WriteMessage(w, http.StatusBadRequest, domain.ValidationMessage(err))
	case errors.As(err, &notOwner):
		httpx.WriteMessage(w, http.StatusBadRequest, notOwner.Error())
	case errors.Is(err, service.ErrMissingCredentials):
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingCredentials)
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidCredentials)
	case errors.Is(err, service.ErrWrongPassword):
		httpx.WriteMessage(w, http.StatusBadRequest, msgWrongPassword)
	case errors.Is(err, service.ErrNoTaskIDs):
		httpx.WriteMessage(w, http.StatusBadRequest, msgNoTaskIDs)
	case errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteMessage(w, http.StatusBadRequest, msgDuplicate)
	case errors.Is(err, service.ErrUnauthenticated):
		httpx.WriteMessage(w, http.StatusUnauthorized, httpx.MsgInvalidToken)
	case errors.Is(err, service.ErrUserGone):
		httpx.WriteMessage(w, http.StatusUnauthorized, msgUserGone)
	case errors.Is(err, service.ErrStaleCredential):
		httpx.WriteMessage(w, http.StatusUnauthorized, msgStaleCredential)
	case errors.Is(err, service.ErrNoTasksDeleted):
		httpx.WriteMessage(w, http.StatusNotFound, msgNoTasksDeleted)
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, msgNotFound)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		msg := httpx.MsgInternal
		if e.Dev {
			msg = err.Error()
		}
		httpx.WriteMessage(w, http.StatusInternalServerError, msg)
	}
}
