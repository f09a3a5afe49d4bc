package mail

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

// SendTimeout bounds a single delivery attempt.
const SendTimeout = 30 * time.Second

// Notifier sends emails in the background. Each send runs on its own
// goroutine with a context detached from the caller, so a finished request
// never cancels its emails. Wait drains in-flight sends on shutdown.
type Notifier struct {
	sender Sender // nil disables delivery
	mailer *Mailer
	wg     sync.WaitGroup
}

// NewNotifier returns a Notifier. A nil sender yields a Notifier that
// skips every email.
func NewNotifier(sender Sender, mailer *Mailer) *Notifier {
	return &Notifier{sender: sender, mailer: mailer}
}

func (n *Notifier) Enabled() bool { return n.sender != nil }

// WaitlistJoined sends the welcome email and the ops notification.
func (n *Notifier) WaitlistJoined(ctx context.Context, e domain.WaitlistEntry) {
	n.dispatch(ctx, "welcome", func() (Message, error) { return n.mailer.Welcome(e) })
	n.dispatch(ctx, "waitlist_signup", func() (Message, error) { return n.mailer.WaitlistSignup(e) })
}

func (n *Notifier) WaitlistInvited(ctx context.Context, e domain.WaitlistEntry) {
	n.dispatch(ctx, "invitation", func() (Message, error) { return n.mailer.Invitation(e) })
}

func (n *Notifier) ConfirmEmail(ctx context.Context, u domain.User, token string, ttl time.Duration) {
	n.dispatch(ctx, "confirm_email", func() (Message, error) { return n.mailer.ConfirmEmail(u, token, ttl) })
}

func (n *Notifier) ResetPassword(ctx context.Context, u domain.User, token string, ttl time.Duration) {
	n.dispatch(ctx, "reset_password", func() (Message, error) { return n.mailer.ResetPassword(u, token, ttl) })
}

func (n *Notifier) dispatch(ctx context.Context, kind string, build func() (Message, error)) {
	log := slogx.FromContext(ctx).With(slog.String("email", kind))
	if !n.Enabled() {
		log.Debug("email delivery disabled, skipping")
		return
	}

	ctx = context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		msg, err := build()
		if err != nil {
			log.Error("failed to render email", slog.Any("error", err))
			return
		}

		ctx, cancel := context.WithTimeout(ctx, SendTimeout)
		defer cancel()

		if err := n.sender.Send(ctx, msg); err != nil {
			log.Error("failed to send email", slog.Any("error", err))
			return
		}
		log.Info("email sent")
	}()
}

// Wait blocks until in-flight sends finish or ctx is done.
func (n *Notifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
