package httpx

import "net/http"

// MsgForbidden is returned when the caller's role is not allowed.
const MsgForbidden = "You don't have permission to perform this action"

// RequireAnyRole lets the request through only when the caller's role, as
// recorded by WithRole, is one of roles.
func RequireAnyRole(roles ...string) Middleware {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := allowed[roleFromCtx(r.Context())]; !ok {
				WriteMessage(w, http.StatusForbidden, MsgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
