package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

type ctxKey struct{}

func withUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// userFromContext returns the user loaded by requireUser.
func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(domain.User)
	return u, ok
}

// requireUser resolves the verified token claims to a live user record. It
// must run after httpx.AuthnMiddleware. The user's current role, not the one
// in the token, is what role checks see.
func requireUser(auth *service.AuthService, errs errorWriter) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			claims, ok := httpx.ClaimsFromContext(ctx)
			if !ok {
				httpx.WriteMessage(w, http.StatusUnauthorized, httpx.MsgNotLoggedIn)
				return
			}

			u, err := auth.Authenticate(ctx, claims)
			if err != nil {
				errs.write(w, r, err)
				return
			}

			ctx = withUser(ctx, u)
			ctx = httpx.WithRole(ctx, string(u.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
