// Package service holds the PropCloud business rules. Services are plain
// structs over a store.Store; HTTP handlers and the CLI call them directly.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
)

// ErrValidation matches every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports bad caller input. Message is safe to return to
// clients as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// Notifier delivers transactional emails. Implementations must not block
// the caller on delivery and must swallow delivery failures.
type Notifier interface {
	WaitlistJoined(ctx context.Context, e domain.WaitlistEntry)
	WaitlistInvited(ctx context.Context, e domain.WaitlistEntry)
	ConfirmEmail(ctx context.Context, u domain.User, token string, ttl time.Duration)
	ResetPassword(ctx context.Context, u domain.User, token string, ttl time.Duration)
}

func now() time.Time { return time.Now().UTC() }

// optional turns blank strings into nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
