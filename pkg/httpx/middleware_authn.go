package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/propcloud/pkg/jwtx"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

// SessionCookieName holds the session token for browser clients.
const SessionCookieName = "propcloud_session"

// SessionToken returns the raw session token from the Authorization header
// or, failing that, the session cookie.
func SessionToken(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// LoadSession attaches the principal for a valid session token and
// otherwise passes the request through untouched.
func LoadSession(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p, ok := verifySession(r, v); ok {
				ctx := WithPrincipal(r.Context(), p)
				ctx = slogx.With(ctx, "user_id", p.UserID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession rejects requests without a valid session with 401.
func RequireSession(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := verifySession(r, v)
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := WithPrincipal(r.Context(), p)
			ctx = slogx.With(ctx, "user_id", p.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifySession(r *http.Request, v jwtx.Verifier) (Principal, bool) {
	raw := SessionToken(r)
	if raw == "" {
		return Principal{}, false
	}

	claims, err := v.Verify(raw)
	if err != nil {
		slogx.FromContext(r.Context()).Debug("session rejected", "err", err)
		return Principal{}, false
	}

	return Principal{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
		Name:   claims.Name,
	}, claims.Subject != ""
}
