package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/jmoiron/sqlx"
)

type usersRepo struct {
	q sqlx.ExtContext
}

type userRow struct {
	ID               string       `db:"id"`
	Email            string       `db:"email"`
	PasswordHash     string       `db:"password_hash"`
	FullName         string       `db:"full_name"`
	Role             string       `db:"role"`
	EmailConfirmedAt sql.NullTime `db:"email_confirmed_at"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
}

const userColumns = `id, email, password_hash, full_name, role, email_confirmed_at, created_at, updated_at`

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:               row.ID,
		Email:            row.Email,
		PasswordHash:     row.PasswordHash,
		FullName:         row.FullName,
		Role:             row.Role,
		EmailConfirmedAt: mapNullTimePtr(row.EmailConfirmedAt),
		CreatedAt:        row.CreatedAt.UTC(),
		UpdatedAt:        row.UpdatedAt.UTC(),
	}
}

func (r *usersRepo) get(ctx context.Context, where string, arg any) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.q, &row,
		r.q.Rebind(`SELECT `+userColumns+` FROM users WHERE `+where+` = ?`), arg)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	return r.get(ctx, "id", id)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.get(ctx, "email", email)
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	_, err := r.q.ExecContext(ctx,
		r.q.Rebind(`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		u.ID,
		u.Email,
		u.PasswordHash,
		u.FullName,
		u.Role,
		mapOptionalTime(u.EmailConfirmedAt),
		u.CreatedAt.UTC(),
		u.UpdatedAt.UTC(),
	)
	return mapConflict(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`),
		hash, at.UTC(), userID)
	return expectOne(res, err)
}

func (r *usersRepo) ConfirmEmail(ctx context.Context, userID string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE users SET email_confirmed_at = COALESCE(email_confirmed_at, ?), updated_at = ? WHERE id = ?`),
		at.UTC(), at.UTC(), userID)
	return expectOne(res, err)
}

func (r *usersRepo) SetRole(ctx context.Context, email, role string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE users SET role = ?, updated_at = ? WHERE email = ?`),
		role, at.UTC(), email)
	return expectOne(res, err)
}
