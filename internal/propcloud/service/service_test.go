package service_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store/drivers/sqldb"
	"github.com/aussiebroadwan/propcloud/pkg/cryptox"
	"github.com/aussiebroadwan/propcloud/pkg/jwtx"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cryptox.SetPepper("test-pepper")
	os.Exit(m.Run())
}

func newStore(t *testing.T) *sqldb.Store {
	t.Helper()

	s, err := sqldb.Open(sqldb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// sentMail records what a Notifier was asked to send.
type sentMail struct {
	kind  string
	email string
	token string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMail
}

func (n *fakeNotifier) record(m sentMail) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, m)
}

func (n *fakeNotifier) WaitlistJoined(_ context.Context, e domain.WaitlistEntry) {
	n.record(sentMail{kind: "joined", email: e.Email})
}

func (n *fakeNotifier) WaitlistInvited(_ context.Context, e domain.WaitlistEntry) {
	n.record(sentMail{kind: "invited", email: e.Email})
}

func (n *fakeNotifier) ConfirmEmail(_ context.Context, u domain.User, token string, _ time.Duration) {
	n.record(sentMail{kind: "confirm", email: u.Email, token: token})
}

func (n *fakeNotifier) ResetPassword(_ context.Context, u domain.User, token string, _ time.Duration) {
	n.record(sentMail{kind: "reset", email: u.Email, token: token})
}

func (n *fakeNotifier) last(kind string) (sentMail, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.sent) - 1; i >= 0; i-- {
		if n.sent[i].kind == kind {
			return n.sent[i], true
		}
	}
	return sentMail{}, false
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func newAuthService(t *testing.T, st *sqldb.Store, n service.Notifier) (*service.AuthService, jwtx.Verifier) {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := jwtx.NewEdDSASigner(priv)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	keys.Add(signer.KID(), signer.PublicKey())

	return &service.AuthService{
		Store:      st,
		Notifier:   n,
		Signer:     signer,
		Issuer:     "propcloud-test",
		SessionTTL: time.Hour,
	}, jwtx.NewEdDSAVerifier(keys, "propcloud-test")
}

// newOwner signs up and confirms a user, returning its id.
func newOwner(t *testing.T, st *sqldb.Store, email string) string {
	t.Helper()

	n := &fakeNotifier{}
	auth, _ := newAuthService(t, st, n)
	u, err := auth.Signup(context.Background(), service.SignupInput{Email: email, Password: "correct horse"})
	require.NoError(t, err)
	return u.ID
}

func strPtr(s string) *string { return &s }

func discardLogger() *slog.Logger { return slogx.Discard() }
