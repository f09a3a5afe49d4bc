// Package guard decides whether a page navigation may continue based on
// whether the visitor has a session.
package guard

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/propcloud/pkg/httpx"
)

const (
	LoginPath         = "/auth/login"
	DashboardPath     = "/dashboard"
	ResetPasswordPath = "/auth/reset-password"
)

// Prefixes are the page paths the guard runs for.
var Prefixes = []string{"/dashboard", "/auth", "/admin"}

// Decision is the outcome for one navigation. Redirect is empty when the
// request should continue.
type Decision struct {
	Redirect string
}

func (d Decision) Continue() bool { return d.Redirect == "" }

// Decide is the pure guard rule:
//   - dashboard pages without a session go to the login page, carrying the
//     requested path in ?redirect=
//   - auth pages with a session go to the dashboard, except the password
//     reset page which must stay reachable from the emailed link
func Decide(path string, hasSession bool) Decision {
	if strings.HasPrefix(path, DashboardPath) && !hasSession {
		return Decision{Redirect: LoginPath + "?redirect=" + url.QueryEscape(path)}
	}
	if strings.HasPrefix(path, "/auth") && hasSession && path != ResetPasswordPath {
		return Decision{Redirect: DashboardPath}
	}
	return Decision{}
}

// Guarded reports whether path falls under one of the guarded prefixes.
func Guarded(path string) bool {
	for _, p := range Prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Middleware applies Decide to guarded paths, answering 307 on redirect.
// hasSession reports whether the request carries a valid session.
func Middleware(hasSession func(*http.Request) bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Guarded(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			d := Decide(r.URL.Path, hasSession(r))
			if !d.Continue() {
				http.Redirect(w, r, d.Redirect, http.StatusTemporaryRedirect)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
