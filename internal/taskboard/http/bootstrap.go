package http

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
	errs             errorWriter
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the service
//	@Description	Creates the first administrator. Only available when a bootstrap token is configured and only while no user exists.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token for authorization"
//	@Param			request				body		tasksdk.BootstrapRequest	true	"First admin"
//	@Success		201					{object}	tasksdk.Response[tasksdk.BootstrapResponse]
//	@Failure		400					{object}	tasksdk.ErrorResponse	"Invalid request body or validation failed"
//	@Failure		401					{object}	tasksdk.ErrorResponse	"Missing or invalid bootstrap token, or system already bootstrapped"
//	@Failure		404					{object}	tasksdk.ErrorResponse	"Bootstrap not enabled (no token configured)"
//	@Router			/api/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())
	l.Info("Starting to bootstrap")

	// 1. Check if enabled
	if h.BootstrapService.Token == "" {
		httpx.WriteMessage(w, http.StatusNotFound, "Bootstrap endpoint is not enabled")
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	// 3. Parse request body and validate
	var req tasksdk.BootstrapRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid input data. "+joinFieldErrors(errs))
		return
	}

	// 4. Perform bootstrap
	admin, err := h.BootstrapService.Bootstrap(r.Context(), token, domain.BootstrapData{
		AdminName:     strings.TrimSpace(req.AdminName),
		AdminEmail:    strings.TrimSpace(req.AdminEmail),
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready):
			httpx.WriteMessage(w, http.StatusUnauthorized, "System has already been bootstrapped")
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid bootstrap token")
		default:
			h.errs.write(w, r, err)
		}
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, tasksdk.BootstrapResponse{AdminUserID: admin.ID.String()})
}

// joinFieldErrors renders field errors in a stable order.
func joinFieldErrors(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + errs[f]
	}
	return strings.Join(parts, ". ")
}
