package httpx

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// Messages returned when a request cannot be authenticated.
const (
	MsgNotLoggedIn  = "You are not logged in! Please login to get access"
	MsgInvalidToken = "Invalid token. Please log in again!"
	MsgTokenExpired = "Your token has expired! Please log in again."
)

// AuthnMiddleware verifies the session token (bearer header or cookie) and
// stores the claims in the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := TokenFromRequest(r)
			if raw == "" {
				writeBearerError(w, MsgNotLoggedIn)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				if errors.Is(err, jwtx.ErrExpired) {
					writeBearerError(w, MsgTokenExpired)
					return
				}
				writeBearerError(w, MsgInvalidToken)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			ctx = slogx.With(ctx, "user_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-style challenge plus the JSON envelope.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteMessage(w, http.StatusUnauthorized, desc)
}
