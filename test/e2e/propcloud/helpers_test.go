package propcloud_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/app"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/mail"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const password = "correct horse battery"

// outbox records delivered emails.
type outbox struct {
	mu   sync.Mutex
	msgs []mail.Message
}

func (o *outbox) Send(_ context.Context, msg mail.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.msgs = append(o.msgs, msg)
	return nil
}

// await waits for a message to to with subject and returns it.
func (o *outbox) await(t *testing.T, to, subject string) mail.Message {
	t.Helper()

	var found mail.Message
	require.Eventually(t, func() bool {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i := len(o.msgs) - 1; i >= 0; i-- {
			if o.msgs[i].To.Email == to && o.msgs[i].Subject == subject {
				found = o.msgs[i]
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond, "no %q email to %s", subject, to)
	return found
}

func (o *outbox) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.msgs)
}

var tokenPattern = regexp.MustCompile(`token=([A-Za-z0-9_-]+)`)

// linkToken extracts the token query parameter from an emailed link.
func linkToken(t *testing.T, msg mail.Message) string {
	t.Helper()
	m := tokenPattern.FindStringSubmatch(msg.HTML)
	require.Len(t, m, 2, "no token link in %q", msg.Subject)
	return m[1]
}

type testServer struct {
	cfg    app.Config
	client *propcloudsdk.Client
	outbox *outbox
}

// setupServer runs the fully wired application on an httptest server
// backed by a SQLite file.
func setupServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()

	cfg := app.Config{
		Env:                  "test",
		DatabaseDriver:       "sqlite",
		DatabaseURL:          filepath.Join(dir, "propcloud.db"),
		SiteURL:              "https://propcloud.test",
		AdminAuthMode:        "session",
		SessionTTL:           time.Hour,
		PepperFile:           filepath.Join(dir, "pepper"),
		MailDriver:           "sendgrid",
		MailFromAddress:      "notifications@propcloud.test",
		MailFromName:         "PropCloud.io",
		MailOpsAddress:       "ops@propcloud.test",
		ShutdownGracePeriod:  5 * time.Second,
		HousekeepingInterval: time.Hour,
	}
	require.NoError(t, cfg.Validate())

	box := &outbox{}
	application, err := app.New(cfg, app.WithLogger(slogx.Discard()), app.WithMailSender(box))
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		require.NoError(t, application.Shutdown())
	})

	return &testServer{cfg: cfg, client: propcloudsdk.NewClient(srv.URL), outbox: box}
}

// register signs up and confirms an account, then logs in.
func (s *testServer) register(t *testing.T, email string) *propcloudsdk.Session {
	t.Helper()
	ctx := t.Context()

	require.NoError(t, s.client.Signup(ctx, propcloudsdk.SignupRequest{Email: email, Password: password}))
	msg := s.outbox.await(t, email, "Confirm your PropCloud.io email")
	require.NoError(t, s.client.ConfirmEmail(ctx, linkToken(t, msg)))

	sess, err := s.client.Login(ctx, email, password)
	require.NoError(t, err)
	return sess
}

// registerAdmin registers an account, promotes it the way the admin CLI
// does and logs in again to pick up the role.
func (s *testServer) registerAdmin(t *testing.T, email string) *propcloudsdk.Session {
	t.Helper()

	s.register(t, email)
	require.NoError(t, app.PromoteAdmin(t.Context(), s.cfg, email))

	sess, err := s.client.Login(t.Context(), email, password)
	require.NoError(t, err)
	require.Equal(t, "admin", sess.User.Role)
	return sess
}
