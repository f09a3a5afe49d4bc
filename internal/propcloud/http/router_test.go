package http_test

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	propcloudhttp "github.com/aussiebroadwan/propcloud/internal/propcloud/http"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store/drivers/sqldb"
	"github.com/aussiebroadwan/propcloud/pkg/cryptox"
	"github.com/aussiebroadwan/propcloud/pkg/httpx"
	"github.com/aussiebroadwan/propcloud/pkg/jwtx"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cryptox.SetPepper("test-pepper")
	os.Exit(m.Run())
}

type mailed struct {
	kind  string
	email string
	token string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []mailed
}

func (n *fakeNotifier) record(m mailed) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, m)
}

func (n *fakeNotifier) WaitlistJoined(_ context.Context, e domain.WaitlistEntry) {
	n.record(mailed{kind: "joined", email: e.Email})
}

func (n *fakeNotifier) WaitlistInvited(_ context.Context, e domain.WaitlistEntry) {
	n.record(mailed{kind: "invited", email: e.Email})
}

func (n *fakeNotifier) ConfirmEmail(_ context.Context, u domain.User, token string, _ time.Duration) {
	n.record(mailed{kind: "confirm", email: u.Email, token: token})
}

func (n *fakeNotifier) ResetPassword(_ context.Context, u domain.User, token string, _ time.Duration) {
	n.record(mailed{kind: "reset", email: u.Email, token: token})
}

// tokenFor returns the latest token of kind mailed to email.
func (n *fakeNotifier) tokenFor(t *testing.T, kind, email string) string {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.sent) - 1; i >= 0; i-- {
		if n.sent[i].kind == kind && n.sent[i].email == email {
			return n.sent[i].token
		}
	}
	t.Fatalf("no %s mail sent to %s", kind, email)
	return ""
}

func (n *fakeNotifier) count(kind string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, m := range n.sent {
		if m.kind == kind {
			c++
		}
	}
	return c
}

type testEnv struct {
	router   *propcloudhttp.Router
	store    *sqldb.Store
	notifier *fakeNotifier
	auth     *service.AuthService
}

func newTestEnv(t *testing.T, opts propcloudhttp.Options) *testEnv {
	t.Helper()

	st, err := sqldb.Open(sqldb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := jwtx.NewEdDSASigner(priv)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	keys.Add(signer.KID(), signer.PublicKey())
	verifier := jwtx.NewEdDSAVerifier(keys, "propcloud-test")

	n := &fakeNotifier{}
	auth := &service.AuthService{
		Store:      st,
		Notifier:   n,
		Signer:     signer,
		Issuer:     "propcloud-test",
		SessionTTL: time.Hour,
	}

	r := propcloudhttp.NewRouter(keys, verifier, "test", st, slogx.Discard(), opts)
	r.WaitlistService = &service.WaitlistService{Store: st, Notifier: n}
	r.AuthService = auth
	r.PropertyService = &service.PropertyService{Store: st}
	r.BookingService = &service.BookingService{Store: st}
	r.DashboardService = &service.DashboardService{Store: st}
	r.ApplyRoutes()

	return &testEnv{router: r, store: st, notifier: n, auth: auth}
}

// do sends a JSON request through the router. token, if set, is sent as a
// bearer token.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// session creates a confirmed account through the services and returns a
// session token for it.
func (e *testEnv) session(t *testing.T, email string, admin bool) string {
	t.Helper()
	ctx := context.Background()

	_, err := e.auth.Signup(ctx, service.SignupInput{Email: email, Password: "correct horse"})
	require.NoError(t, err)
	require.NoError(t, e.auth.Confirm(ctx, e.notifier.tokenFor(t, "confirm", email)))
	if admin {
		require.NoError(t, e.auth.Promote(ctx, email))
	}

	sess, err := e.auth.Login(ctx, email, "correct horse")
	require.NoError(t, err)
	return sess.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{})

	rec := env.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = env.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"database":"ok"`)
	require.Contains(t, rec.Body.String(), `"signer":"ok"`)

	rec = env.do(t, http.MethodGet, "/.well-known/jwks.json", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	jwks := decode[propcloudsdk.JWKSResponse](t, rec)
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "Ed25519", jwks.Keys[0].Curve)
	require.Equal(t, "EdDSA", jwks.Keys[0].Algorithm)
}

func TestRouteGuard(t *testing.T) {
	web := t.TempDir()
	require.NoError(t, os.MkdirAll(web+"/dashboard", 0o755))
	require.NoError(t, os.WriteFile(web+"/dashboard/index.html", []byte("dashboard"), 0o644))
	require.NoError(t, os.WriteFile(web+"/index.html", []byte("landing"), 0o644))

	env := newTestEnv(t, propcloudhttp.Options{WebRoot: web})
	token := env.session(t, "owner@example.com", false)

	get := func(path string, withCookie bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if withCookie {
			req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: token})
		}
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("dashboard without session redirects to login", func(t *testing.T) {
		rec := get("/dashboard/properties", false)
		require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		require.Equal(t, "/auth/login?redirect=%2Fdashboard%2Fproperties", rec.Header().Get("Location"))
	})

	t.Run("auth pages with session redirect to dashboard", func(t *testing.T) {
		rec := get("/auth/login", true)
		require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		require.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})

	t.Run("reset password page stays reachable with session", func(t *testing.T) {
		rec := get("/auth/reset-password", true)
		require.NotEqual(t, http.StatusTemporaryRedirect, rec.Code)
	})

	t.Run("dashboard with session is served", func(t *testing.T) {
		rec := get("/dashboard/", true)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "dashboard")
	})

	t.Run("unguarded paths are served", func(t *testing.T) {
		rec := get("/", false)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "landing")
	})

	t.Run("expired or forged cookies do not count", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: "not-a-token"})
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	})
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{AllowedOrigins: []string{"https://propcloud.io"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/waitlist", nil)
	req.Header.Set("Origin", "https://propcloud.io")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, "https://propcloud.io", rec.Header().Get("Access-Control-Allow-Origin"))
}
