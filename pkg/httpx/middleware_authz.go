package httpx

import (
	"net/http"
	"slices"
	"strings"
)

// RequireAnyScope passes the request on if the caller holds at least one of
// the listed scopes.
func RequireAnyScope(required ...string) Middleware {
	return requireScopes(required, func(have []string) bool {
		return slices.ContainsFunc(required, func(s string) bool { return slices.Contains(have, s) })
	})
}

// RequireAllScopes passes the request on only if the caller holds every
// listed scope.
func RequireAllScopes(required ...string) Middleware {
	return requireScopes(required, func(have []string) bool {
		for _, s := range required {
			if !slices.Contains(have, s) {
				return false
			}
		}
		return true
	})
}

func requireScopes(required []string, ok func(have []string) bool) Middleware {
	challenge := `Bearer error="insufficient_scope", scope="` + strings.Join(required, " ") + `"`
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ok(scopesFromCtx(r.Context())) {
				w.Header().Set("WWW-Authenticate", challenge)
				WriteError(w, http.StatusForbidden, "insufficient_scope", "missing required scope")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
