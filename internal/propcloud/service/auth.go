package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store"
	"github.com/aussiebroadwan/propcloud/pkg/cryptox"
	"github.com/aussiebroadwan/propcloud/pkg/idx"
	"github.com/aussiebroadwan/propcloud/pkg/jwtx"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

const (
	MinPasswordLength = 8

	ConfirmTokenTTL = 24 * time.Hour
	ResetTokenTTL   = time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password too short")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

// Session is an issued session token.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

type SignupInput struct {
	Email    string
	Password string
	FullName string
}

// AuthService is the password based identity provider: accounts, email
// confirmation, password reset and session issuance.
type AuthService struct {
	Store      store.Store
	Notifier   Notifier
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates an unconfirmed account and mails a confirmation link. An
// invited waitlist entry for the same email becomes active.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate
	email := normalizeEmail(in.Email)
	if !govalidator.IsEmail(email) {
		return domain.User{}, ErrInvalidEmail
	}
	if len(in.Password) < MinPasswordLength {
		return domain.User{}, ErrWeakPassword
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate confirmation token", slog.Any("error", err))
		return domain.User{}, err
	}

	at := now()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(in.FullName),
		Role:         domain.RoleUser,
		CreatedAt:    at,
		UpdatedAt:    at,
	}

	// 2. Create the user, its confirmation token and activate the waitlist
	// entry together
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}

		if err := tx.AuthTokens().Create(ctx, domain.AuthToken{
			ID:        idx.New().String(),
			UserID:    user.ID,
			Purpose:   domain.PurposeConfirmEmail,
			TokenHash: cryptox.FingerprintToken(token),
			ExpiresAt: at.Add(ConfirmTokenTTL),
			CreatedAt: at,
		}); err != nil {
			return err
		}

		for _, candidate := range waitlistEmails(in.Email, email) {
			err := tx.Waitlist().MarkActive(ctx, candidate, at)
			if err == nil {
				log.Info("waitlist entry activated")
				break
			}
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user signed up", slog.String("user_id", user.ID))

	// 3. Mail the confirmation link
	s.Notifier.ConfirmEmail(ctx, user, token, ConfirmTokenTTL)

	return user, nil
}

// waitlistEmails is the typed address and its normalized form, deduplicated.
// Waitlist emails are stored exactly as submitted.
func waitlistEmails(typed, normalized string) []string {
	typed = strings.TrimSpace(typed)
	if typed == normalized {
		return []string{normalized}
	}
	return []string{typed, normalized}
}

// Confirm consumes a confirmation token and marks the email confirmed.
func (s *AuthService) Confirm(ctx context.Context, token string) error {
	log := slogx.FromContext(ctx)

	err := s.consumeToken(ctx, domain.PurposeConfirmEmail, token, func(tx store.Tx, t domain.AuthToken, at time.Time) error {
		return tx.Users().ConfirmEmail(ctx, t.UserID, at)
	})
	if err != nil && !errors.Is(err, ErrInvalidToken) {
		log.Error("failed to confirm email", slog.Any("error", err))
	}
	return err
}

// Login checks credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("failed to verify password", slog.Any("error", err))
		}
		return Session{}, ErrInvalidCredentials
	}

	if !user.Confirmed() {
		return Session{}, ErrEmailNotConfirmed
	}

	return s.IssueSession(ctx, user)
}

// IssueSession signs a session token for user.
func (s *AuthService) IssueSession(ctx context.Context, user domain.User) (Session, error) {
	claims := jwtx.NewSessionClaims(s.Issuer, user.ID, user.Email, user.Role, user.FullName, s.SessionTTL, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to sign session", slog.Any("error", err))
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: user}, nil
}

// ForgotPassword mails a reset link when the account exists. Unknown emails
// are not reported, so callers answer the same way either way.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return err
	}

	at := now()
	if err := s.Store.AuthTokens().Create(ctx, domain.AuthToken{
		ID:        idx.New().String(),
		UserID:    user.ID,
		Purpose:   domain.PurposeResetPassword,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: at.Add(ResetTokenTTL),
		CreatedAt: at,
	}); err != nil {
		log.Error("failed to store reset token", slog.Any("error", err))
		return err
	}

	s.Notifier.ResetPassword(ctx, user, token, ResetTokenTTL)
	return nil
}

// ResetPassword consumes a reset token and replaces the password hash.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	log := slogx.FromContext(ctx)

	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	err = s.consumeToken(ctx, domain.PurposeResetPassword, token, func(tx store.Tx, t domain.AuthToken, at time.Time) error {
		return tx.Users().UpdatePasswordHash(ctx, t.UserID, hash, at)
	})
	if err != nil && !errors.Is(err, ErrInvalidToken) {
		log.Error("failed to reset password", slog.Any("error", err))
	}
	return err
}

// consumeToken looks up an active token, marks it used and runs apply in
// the same transaction.
func (s *AuthService) consumeToken(
	ctx context.Context,
	purpose domain.TokenPurpose,
	token string,
	apply func(tx store.Tx, t domain.AuthToken, at time.Time) error,
) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidToken
	}

	at := now()
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.AuthTokens().GetActive(ctx, purpose, cryptox.FingerprintToken(token), at)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}

		if err := tx.AuthTokens().MarkUsed(ctx, t.ID, at); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}

		return apply(tx, t, at)
	})
}

// CurrentUser loads the account behind a session.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}

// Promote grants the admin role to an existing account.
func (s *AuthService) Promote(ctx context.Context, email string) error {
	err := s.Store.Users().SetRole(ctx, normalizeEmail(email), domain.RoleAdmin, now())
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
