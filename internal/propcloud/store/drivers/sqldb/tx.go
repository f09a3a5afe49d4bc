package sqldb

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/store"
	"github.com/jmoiron/sqlx"
)

type txStore struct {
	tx *sqlx.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the pool belongs to the outer Store

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Waitlist() store.Waitlist     { return &waitlistRepo{q: t.tx} }
func (t *txStore) Users() store.Users           { return &usersRepo{q: t.tx} }
func (t *txStore) AuthTokens() store.AuthTokens { return &authTokensRepo{q: t.tx} }
func (t *txStore) Properties() store.Properties { return &propertiesRepo{q: t.tx} }
func (t *txStore) Bookings() store.Bookings     { return &bookingsRepo{q: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run on the Store before any tx
