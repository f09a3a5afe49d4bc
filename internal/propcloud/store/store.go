package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the SQL drivers.
// Sub-repositories hang off it so a Tx can hand out the same repositories
// bound to the transaction.
type Store interface {
	Waitlist() Waitlist
	Users() Users
	AuthTokens() AuthTokens
	Properties() Properties
	Bookings() Bookings

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only the tx repositories may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a Store bound to a transaction.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Waitlist interface {
	// GetByEmail does an exact match on email.
	GetByEmail(ctx context.Context, email string) (domain.WaitlistEntry, error)

	// Create inserts e and returns it with the position the store assigned.
	// A duplicate email is ErrAlreadyExists.
	Create(ctx context.Context, e domain.WaitlistEntry) (domain.WaitlistEntry, error)

	// List returns every entry ordered by position.
	List(ctx context.Context) ([]domain.WaitlistEntry, error)

	// MarkInvited sets status=invited and invited_at=at regardless of the
	// current status, returning the updated row.
	MarkInvited(ctx context.Context, email string, at time.Time) (domain.WaitlistEntry, error)

	// MarkActive moves an invited entry to active. ErrNotFound when there is
	// no invited entry for email.
	MarkActive(ctx context.Context, email string, at time.Time) error
}

type Users interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Create fails with ErrAlreadyExists for a taken email.
	Create(ctx context.Context, u domain.User) error

	UpdatePasswordHash(ctx context.Context, userID, hash string, at time.Time) error
	ConfirmEmail(ctx context.Context, userID string, at time.Time) error
	SetRole(ctx context.Context, email, role string, at time.Time) error
}

type AuthTokens interface {
	Create(ctx context.Context, t domain.AuthToken) error

	// GetActive finds an unused, unexpired token by purpose and fingerprint.
	GetActive(ctx context.Context, purpose domain.TokenPurpose, hash string, now time.Time) (domain.AuthToken, error)

	// MarkUsed consumes the token. ErrNotFound if it was already used.
	MarkUsed(ctx context.Context, id string, at time.Time) error

	// DeleteStale removes tokens that expired or were used before cutoff.
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// Properties are always addressed through their owner.
type Properties interface {
	// ListByOwner returns the owner's properties, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error)

	Get(ctx context.Context, ownerID, id string) (domain.Property, error)
	Create(ctx context.Context, p domain.Property) error

	// Update overwrites the editable fields of p. ErrNotFound if p is not
	// owned by p.UserID.
	Update(ctx context.Context, p domain.Property) error

	// Delete removes the property and its bookings.
	Delete(ctx context.Context, ownerID, id string) error
}

// Bookings are visible through the owner of their property.
type Bookings interface {
	// ListByOwner returns bookings on the owner's properties ordered by
	// check in, each with PropertyName filled.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error)

	Get(ctx context.Context, ownerID, id string) (domain.Booking, error)
	Create(ctx context.Context, b domain.Booking) error
	UpdateStatus(ctx context.Context, ownerID, id string, status domain.BookingStatus) error
}
