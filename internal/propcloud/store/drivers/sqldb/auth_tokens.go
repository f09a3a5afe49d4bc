package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/jmoiron/sqlx"
)

type authTokensRepo struct {
	q sqlx.ExtContext
}

type authTokenRow struct {
	ID        string       `db:"id"`
	UserID    string       `db:"user_id"`
	Purpose   string       `db:"purpose"`
	TokenHash string       `db:"token_hash"`
	ExpiresAt time.Time    `db:"expires_at"`
	UsedAt    sql.NullTime `db:"used_at"`
	CreatedAt time.Time    `db:"created_at"`
}

func (r *authTokensRepo) Create(ctx context.Context, t domain.AuthToken) error {
	_, err := r.q.ExecContext(ctx,
		r.q.Rebind(`INSERT INTO auth_tokens (id, user_id, purpose, token_hash, expires_at, used_at, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`),
		t.ID,
		t.UserID,
		string(t.Purpose),
		t.TokenHash,
		t.ExpiresAt.UTC(),
		mapOptionalTime(t.UsedAt),
		t.CreatedAt.UTC(),
	)
	return mapConflict(err)
}

func (r *authTokensRepo) GetActive(ctx context.Context, purpose domain.TokenPurpose, hash string, now time.Time) (domain.AuthToken, error) {
	var row authTokenRow
	err := sqlx.GetContext(ctx, r.q, &row,
		r.q.Rebind(`SELECT id, user_id, purpose, token_hash, expires_at, used_at, created_at
			FROM auth_tokens
			WHERE purpose = ? AND token_hash = ? AND used_at IS NULL AND expires_at > ?`),
		string(purpose), hash, now.UTC())
	if err != nil {
		return domain.AuthToken{}, mapNotFound(err)
	}
	return domain.AuthToken{
		ID:        row.ID,
		UserID:    row.UserID,
		Purpose:   domain.TokenPurpose(row.Purpose),
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt.UTC(),
		UsedAt:    mapNullTimePtr(row.UsedAt),
		CreatedAt: row.CreatedAt.UTC(),
	}, nil
}

func (r *authTokensRepo) MarkUsed(ctx context.Context, id string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE auth_tokens SET used_at = ? WHERE id = ? AND used_at IS NULL`),
		at.UTC(), id)
	return expectOne(res, err)
}

func (r *authTokensRepo) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`DELETE FROM auth_tokens WHERE expires_at < ? OR used_at < ?`),
		cutoff.UTC(), cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
