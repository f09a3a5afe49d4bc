package httpx

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

// RoleLookup returns the current role of an account. An account that no
// longer exists has no role and a nil error.
type RoleLookup func(ctx context.Context, userID string) (string, error)

// RequireRole lets the request through only when the principal attached by
// RequireSession carries role. No principal is 401, any other role is 403.
// With a non-nil lookup the role is read from it instead of the session
// claims, so a revoked role stops working before the session expires.
func RequireRole(role string, lookup RoleLookup) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			current := p.Role
			if lookup != nil {
				var err error
				current, err = lookup(r.Context(), p.UserID)
				if err != nil {
					slogx.FromContext(r.Context()).Error("failed to look up role", "err", err)
					WriteError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
			}

			if current != role {
				WriteError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaticToken compares the bearer token against a shared secret. An
// empty secret rejects everything.
func RequireStaticToken(secret string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			got, found := strings.CutPrefix(authz, "Bearer ")
			if secret == "" || !found ||
				subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
