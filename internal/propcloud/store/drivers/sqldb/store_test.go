package sqldb_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store/drivers/sqldb"
	"github.com/aussiebroadwan/propcloud/pkg/idx"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgImage    = "postgres:16-alpine"
	pgUser     = "propcloud"
	pgPassword = "propcloud"
)

// One Postgres container serves the whole package. Each test gets its own
// database inside it.
var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgHostPort  string
	pgErr       error
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func startPostgres() {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        pgImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// The server logs this once for the init run and again once it
		// is listening for real.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if pgErr != nil {
		return
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		pgErr = err
		return
	}
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		pgErr = err
		return
	}
	pgHostPort = fmt.Sprintf("%s:%s", host, port.Port())
}

func pgDSN(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgPassword, pgHostPort, database)
}

// postgresDSN creates a fresh database in the shared container and returns
// its DSN. The test is skipped when Docker is not available.
func postgresDSN(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres store tests need docker")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	pgOnce.Do(startPostgres)
	require.NoError(t, pgErr)

	admin, err := sqlx.Connect("postgres", pgDSN("postgres"))
	require.NoError(t, err)
	defer admin.Close()

	name := "t_" + strings.ToLower(idx.New().String())
	_, err = admin.Exec("CREATE DATABASE " + name)
	require.NoError(t, err)
	return pgDSN(name)
}

func openStore(t *testing.T, driver, dsn string) *sqldb.Store {
	t.Helper()

	s, err := sqldb.Open(driver, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// forEachDriver runs fn against a migrated SQLite store and a migrated
// Postgres store.
func forEachDriver(t *testing.T, fn func(t *testing.T, s *sqldb.Store)) {
	t.Run(sqldb.DriverSQLite, func(t *testing.T) {
		fn(t, openStore(t, sqldb.DriverSQLite, ":memory:"))
	})
	t.Run(sqldb.DriverPostgres, func(t *testing.T) {
		fn(t, openStore(t, sqldb.DriverPostgres, postgresDSN(t)))
	})
}

func strPtr(s string) *string { return &s }

func createUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "hash",
		FullName:     "Test User",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func TestMigrationsAreIdempotent(t *testing.T) {
	forEachDriver(t, func(t *testing.T, s *sqldb.Store) {
		require.NoError(t, s.ApplyMigrations())
		require.NoError(t, s.Ping(context.Background()))
	})
}

func TestWaitlistPositionsAndDuplicates(t *testing.T) {
	ctx := context.Background()
	forEachDriver(t, func(t *testing.T, s *sqldb.Store) {
		first, err := s.Waitlist().Create(ctx, domain.WaitlistEntry{
			ID:        idx.New().String(),
			Email:     "a@example.com",
			FullName:  strPtr("Ada"),
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
		require.Equal(t, domain.WaitlistPending, first.Status)

		count := 3
		second, err := s.Waitlist().Create(ctx, domain.WaitlistEntry{
			ID:               idx.New().String(),
			Email:            "b@example.com",
			PropertiesCount:  &count,
			MarketingConsent: true,
			CreatedAt:        time.Now(),
		})
		require.NoError(t, err)
		require.Greater(t, second.Position, first.Position)

		_, err = s.Waitlist().Create(ctx, domain.WaitlistEntry{
			ID:        idx.New().String(),
			Email:     "a@example.com",
			CreatedAt: time.Now(),
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		got, err := s.Waitlist().GetByEmail(ctx, "b@example.com")
		require.NoError(t, err)
		require.Equal(t, second.Position, got.Position)
		require.True(t, got.MarketingConsent)
		require.NotNil(t, got.PropertiesCount)
		require.Equal(t, 3, *got.PropertiesCount)
		require.Nil(t, got.FullName)

		all, err := s.Waitlist().List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, "a@example.com", all[0].Email)
		require.Equal(t, "b@example.com", all[1].Email)

		_, err = s.Waitlist().GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWaitlistLargePropertiesCount(t *testing.T) {
	ctx := context.Background()
	forEachDriver(t, func(t *testing.T, s *sqldb.Store) {
		count := 3_000_000_000
		_, err := s.Waitlist().Create(ctx, domain.WaitlistEntry{
			ID:              idx.New().String(),
			Email:           "portfolio@example.com",
			PropertiesCount: &count,
			CreatedAt:       time.Now(),
		})
		require.NoError(t, err)

		got, err := s.Waitlist().GetByEmail(ctx, "portfolio@example.com")
		require.NoError(t, err)
		require.Equal(t, count, *got.PropertiesCount)
	})
}

func TestWaitlistInviteAndActivate(t *testing.T) {
	ctx := context.Background()
	forEachDriver(t, func(t *testing.T, s *sqldb.Store) {
		_, err := s.Waitlist().Create(ctx, domain.WaitlistEntry{
			ID:        idx.New().String(),
			Email:     "x@example.com",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		require.ErrorIs(t, s.Waitlist().MarkActive(ctx, "x@example.com", time.Now()), store.ErrNotFound)

		invited, err := s.Waitlist().MarkInvited(ctx, "x@example.com", time.Now())
		require.NoError(t, err)
		require.Equal(t, domain.WaitlistInvited, invited.Status)
		require.NotNil(t, invited.InvitedAt)

		require.NoError(t, s.Waitlist().MarkActive(ctx, "x@example.com", time.Now()))
		active, err := s.Waitlist().GetByEmail(ctx, "x@example.com")
		require.NoError(t, err)
		require.Equal(t, domain.WaitlistActive, active.Status)
		require.NotNil(t, active.ActivatedAt)

		_, err = s.Waitlist().MarkInvited(ctx, "missing@example.com", time.Now())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUsersAndTokens(t *testing.T) {
	ctx := context.Background()
	forEachDriver(t, func(t *testing.T, s *sqldb.Store) {
		u := createUser(t, s, "owner@example.com")

		err := s.Users().Create(ctx, domain.User{
			ID:        idx.New().String(),
			Email:     "owner@example.com",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		now := time.Now().UTC()
		require.NoError(t, s.Users().ConfirmEmail(ctx, u.ID, now))
		require.NoError(t, s.Users().SetRole(ctx, "owner@example.com", domain.RoleAdmin, now))

		got, err := s.Users().GetByEmail(ctx, "owner@example.com")
		require.NoError(t, err)
		require.True(t, got.Confirmed())
		require.Equal(t, domain.RoleAdmin, got.Role)

		require.ErrorIs(t, s.Users().SetRole(ctx, "ghost@example.com", domain.RoleAdmin, now), store.ErrNotFound)

		tok := domain.AuthToken{
			ID:        idx.New().String(),
			UserID:    u.ID,
			Purpose:   domain.PurposeResetPassword,
			TokenHash: "fingerprint",
			ExpiresAt: now.Add(time.Hour),
			CreatedAt: now,
		}
		require.NoError(t, s.AuthTokens().Create(ctx, tok))

		_, err = s.AuthTokens().GetActive(ctx, domain.PurposeConfirmEmail, "fingerprint", now)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.AuthTokens().GetActive(ctx, domain.PurposeResetPassword, "fingerprint", now.Add(2*time.Hour))
		require.ErrorIs(t, err, store.ErrNotFound)

		active, err := s.AuthTokens().GetActive(ctx, domain.PurposeResetPassword, "fingerprint", now)
		require.NoError(t, err)
		require.Equal(t, u.ID, active.UserID)

		require.NoError(t, s.AuthTokens().MarkUsed(ctx, active.ID, now))
		require.ErrorIs(t, s.AuthTokens().MarkUsed(ctx, active.ID, now), store.ErrNotFound)

		n, err := s.AuthTokens().DeleteStale(ctx, now.Add(time.Minute))
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})
}

func TestPropertiesAndBookingsAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	forEachDriver(t, func(t *testing.T, s *sqldb.Store) {
		owner := createUser(t, s, "owner@example.com")
		other := createUser(t, s, "other@example.com")

		kind := domain.TypeVilla
		baths := 1.5
		now := time.Now().UTC()
		p := domain.Property{
			ID:            idx.New().String(),
			UserID:        owner.ID,
			Name:          "Sea Breeze",
			PropertyType:  &kind,
			Status:        domain.PropertyActive,
			City:          strPtr("Byron Bay"),
			Bathrooms:     &baths,
			PricePerNight: decimal.NewNullDecimal(decimal.RequireFromString("150.50")),
			Amenities:     []string{"wifi", "pool"},
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		require.NoError(t, s.Properties().Create(ctx, p))

		got, err := s.Properties().Get(ctx, owner.ID, p.ID)
		require.NoError(t, err)
		require.Equal(t, "Sea Breeze", got.Name)
		require.Equal(t, domain.TypeVilla, *got.PropertyType)
		require.True(t, got.PricePerNight.Decimal.Equal(decimal.RequireFromString("150.50")))
		require.False(t, got.CleaningFee.Valid)
		require.NotNil(t, got.Bathrooms)
		require.InDelta(t, 1.5, *got.Bathrooms, 1e-9)
		require.Equal(t, []string{"wifi", "pool"}, got.Amenities)
		require.Empty(t, got.Images)

		_, err = s.Properties().Get(ctx, other.ID, p.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		got.UserID = other.ID
		got.Name = "Hijacked"
		require.ErrorIs(t, s.Properties().Update(ctx, got), store.ErrNotFound)

		got.UserID = owner.ID
		got.Name = "Sea Breeze Villa"
		require.NoError(t, s.Properties().Update(ctx, got))

		b := domain.Booking{
			ID:         idx.New().String(),
			PropertyID: p.ID,
			GuestName:  "Grace",
			CheckIn:    domain.NewDate(2025, 7, 1),
			CheckOut:   domain.NewDate(2025, 7, 4),
			TotalPrice: decimal.RequireFromString("451.50"),
			Status:     domain.BookingPending,
			CreatedAt:  now,
		}
		require.NoError(t, s.Bookings().Create(ctx, b))

		list, err := s.Bookings().ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Sea Breeze Villa", list[0].PropertyName)
		require.Equal(t, "2025-07-01", list[0].CheckIn.String())
		require.Equal(t, 3, list[0].Nights())
		require.True(t, list[0].TotalPrice.Equal(b.TotalPrice))

		otherList, err := s.Bookings().ListByOwner(ctx, other.ID)
		require.NoError(t, err)
		require.Empty(t, otherList)

		require.ErrorIs(t, s.Bookings().UpdateStatus(ctx, other.ID, b.ID, domain.BookingConfirmed), store.ErrNotFound)
		require.NoError(t, s.Bookings().UpdateStatus(ctx, owner.ID, b.ID, domain.BookingConfirmed))

		confirmed, err := s.Bookings().Get(ctx, owner.ID, b.ID)
		require.NoError(t, err)
		require.Equal(t, domain.BookingConfirmed, confirmed.Status)

		require.NoError(t, s.Properties().Delete(ctx, owner.ID, p.ID))
		_, err = s.Bookings().Get(ctx, owner.ID, b.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	forEachDriver(t, func(t *testing.T, s *sqldb.Store) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Waitlist().Create(ctx, domain.WaitlistEntry{
				ID:        idx.New().String(),
				Email:     "rollback@example.com",
				CreatedAt: time.Now(),
			})
			require.NoError(t, err)
			return store.ErrNotFound
		})
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Waitlist().GetByEmail(ctx, "rollback@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
