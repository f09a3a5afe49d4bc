package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/listing"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store"
	"github.com/aussiebroadwan/propcloud/pkg/idx"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

var (
	ErrInvalidEmail     = errors.New("valid email is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrWaitlistNotFound = errors.New("email not found in waitlist")
	ErrWaitlistLookup   = errors.New("waitlist lookup failed")
	ErrWaitlistInsert   = errors.New("waitlist insert failed")
)

// JoinInput is a waitlist signup. Only Email is required.
type JoinInput struct {
	Email            string
	FullName         *string
	CompanyName      *string
	PropertiesCount  *int
	Phone            *string
	Website          *string
	CurrentSoftware  *string
	PainPoints       *string
	MarketingConsent bool
}

type JoinResult struct {
	Entry domain.WaitlistEntry
	// Existing is true when the email was already on the list. No emails
	// are sent in that case.
	Existing bool
}

var waitlistListing = listing.Rule[domain.WaitlistEntry]{
	Status: func(e domain.WaitlistEntry) string { return string(e.Status) },
	Fields: func(e domain.WaitlistEntry) []string {
		return []string{e.Email, listing.Deref(e.FullName), listing.Deref(e.CompanyName)}
	},
}

type WaitlistService struct {
	Store    store.Store
	Notifier Notifier
}

// Join adds in.Email to the waitlist, or reports the position it already
// holds. Positions come from the store and are never reassigned.
func (s *WaitlistService) Join(ctx context.Context, in JoinInput) (JoinResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return JoinResult{}, ErrInvalidEmail
	}

	// 2. Dedup on exact email
	existing, err := s.Store.Waitlist().GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return JoinResult{Entry: existing, Existing: true}, nil
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to check waitlist", slog.Any("error", err))
		return JoinResult{}, fmt.Errorf("%w: %w", ErrWaitlistLookup, err)
	}

	// 3. Insert; the store assigns the position
	count := in.PropertiesCount
	if count != nil && *count == 0 {
		count = nil
	}
	entry, err := s.Store.Waitlist().Create(ctx, domain.WaitlistEntry{
		ID:               idx.New().String(),
		Email:            in.Email,
		FullName:         optional(in.FullName),
		CompanyName:      optional(in.CompanyName),
		PropertiesCount:  count,
		Phone:            optional(in.Phone),
		Website:          optional(in.Website),
		CurrentSoftware:  optional(in.CurrentSoftware),
		PainPoints:       optional(in.PainPoints),
		MarketingConsent: in.MarketingConsent,
		Status:           domain.WaitlistPending,
		CreatedAt:        now(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost a race with a concurrent signup for the same email.
		existing, err := s.Store.Waitlist().GetByEmail(ctx, in.Email)
		if err != nil {
			log.Error("failed to re-read waitlist entry", slog.Any("error", err))
			return JoinResult{}, fmt.Errorf("%w: %w", ErrWaitlistLookup, err)
		}
		return JoinResult{Entry: existing, Existing: true}, nil
	}
	if err != nil {
		log.Error("failed to join waitlist", slog.Any("error", err))
		return JoinResult{}, fmt.Errorf("%w: %w", ErrWaitlistInsert, err)
	}

	log.Info("waitlist signup", slog.Int64("position", entry.Position))

	// 4. Notify after the row is committed
	s.Notifier.WaitlistJoined(ctx, entry)

	return JoinResult{Entry: entry}, nil
}

// List returns entries in position order, narrowed by status tab and search.
func (s *WaitlistService) List(ctx context.Context, status, search string) ([]domain.WaitlistEntry, error) {
	entries, err := s.Store.Waitlist().List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Apply(entries, status, search, waitlistListing), nil
}

// Invite marks the entry invited, re-stamping invited_at on repeat invites,
// and mails the signup link.
func (s *WaitlistService) Invite(ctx context.Context, email string) (domain.WaitlistEntry, error) {
	log := slogx.FromContext(ctx)

	if email == "" {
		return domain.WaitlistEntry{}, ErrEmailRequired
	}

	entry, err := s.Store.Waitlist().MarkInvited(ctx, email, now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.WaitlistEntry{}, ErrWaitlistNotFound
		}
		log.Error("failed to invite waitlist entry", slog.Any("error", err))
		return domain.WaitlistEntry{}, err
	}

	log.Info("waitlist entry invited", slog.Int64("position", entry.Position))
	s.Notifier.WaitlistInvited(ctx, entry)

	return entry, nil
}
