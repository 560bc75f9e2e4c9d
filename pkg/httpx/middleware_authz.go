package httpx

import (
	"net/http"
	"slices"
	"strings"
)

// RequireRole rejects callers whose session role is not one of roles. Use after
// AuthnMiddleware; ownership checks are left to the handler.
func RequireRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(roles, RoleFromContext(r.Context())) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("WWW-Authenticate",
				`Bearer error="insufficient_scope", scope="`+strings.Join(roles, " ")+`"`)
			WriteError(w, http.StatusForbidden, "forbidden", "role not permitted")
		})
	}
}
