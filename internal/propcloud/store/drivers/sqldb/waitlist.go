package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/jmoiron/sqlx"
)

type waitlistRepo struct {
	q sqlx.ExtContext
}

type waitlistRow struct {
	Position         int64          `db:"position"`
	ID               string         `db:"id"`
	Email            string         `db:"email"`
	FullName         sql.NullString `db:"full_name"`
	CompanyName      sql.NullString `db:"company_name"`
	PropertiesCount  sql.NullInt64  `db:"properties_count"`
	Phone            sql.NullString `db:"phone"`
	Website          sql.NullString `db:"website"`
	CurrentSoftware  sql.NullString `db:"current_software"`
	PainPoints       sql.NullString `db:"pain_points"`
	MarketingConsent bool           `db:"marketing_consent"`
	Status           string         `db:"status"`
	CreatedAt        time.Time      `db:"created_at"`
	InvitedAt        sql.NullTime   `db:"invited_at"`
	ActivatedAt      sql.NullTime   `db:"activated_at"`
}

const waitlistColumns = `position, id, email, full_name, company_name, properties_count,
	phone, website, current_software, pain_points, marketing_consent, status,
	created_at, invited_at, activated_at`

func mapWaitlistEntry(row waitlistRow) domain.WaitlistEntry {
	return domain.WaitlistEntry{
		ID:               row.ID,
		Email:            row.Email,
		FullName:         mapNullStringPtr(row.FullName),
		CompanyName:      mapNullStringPtr(row.CompanyName),
		PropertiesCount:  mapNullIntPtr(row.PropertiesCount),
		Phone:            mapNullStringPtr(row.Phone),
		Website:          mapNullStringPtr(row.Website),
		CurrentSoftware:  mapNullStringPtr(row.CurrentSoftware),
		PainPoints:       mapNullStringPtr(row.PainPoints),
		MarketingConsent: row.MarketingConsent,
		Position:         row.Position,
		Status:           domain.WaitlistStatus(row.Status),
		CreatedAt:        row.CreatedAt.UTC(),
		InvitedAt:        mapNullTimePtr(row.InvitedAt),
		ActivatedAt:      mapNullTimePtr(row.ActivatedAt),
	}
}

func (r *waitlistRepo) GetByEmail(ctx context.Context, email string) (domain.WaitlistEntry, error) {
	var row waitlistRow
	err := sqlx.GetContext(ctx, r.q, &row,
		r.q.Rebind(`SELECT `+waitlistColumns+` FROM waitlist WHERE email = ?`), email)
	if err != nil {
		return domain.WaitlistEntry{}, mapNotFound(err)
	}
	return mapWaitlistEntry(row), nil
}

func (r *waitlistRepo) Create(ctx context.Context, e domain.WaitlistEntry) (domain.WaitlistEntry, error) {
	if e.Status == "" {
		e.Status = domain.WaitlistPending
	}
	e.CreatedAt = e.CreatedAt.UTC()

	query := r.q.Rebind(`INSERT INTO waitlist (
		id, email, full_name, company_name, properties_count, phone, website,
		current_software, pain_points, marketing_consent, status, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING position`)

	err := r.q.QueryRowxContext(ctx, query,
		e.ID,
		e.Email,
		mapOptionalString(e.FullName),
		mapOptionalString(e.CompanyName),
		mapOptionalInt(e.PropertiesCount),
		mapOptionalString(e.Phone),
		mapOptionalString(e.Website),
		mapOptionalString(e.CurrentSoftware),
		mapOptionalString(e.PainPoints),
		e.MarketingConsent,
		string(e.Status),
		e.CreatedAt,
	).Scan(&e.Position)
	if err != nil {
		return domain.WaitlistEntry{}, mapConflict(err)
	}
	return e, nil
}

func (r *waitlistRepo) List(ctx context.Context) ([]domain.WaitlistEntry, error) {
	var rows []waitlistRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT `+waitlistColumns+` FROM waitlist ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}

	out := make([]domain.WaitlistEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapWaitlistEntry(row))
	}
	return out, nil
}

func (r *waitlistRepo) MarkInvited(ctx context.Context, email string, at time.Time) (domain.WaitlistEntry, error) {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE waitlist SET status = ?, invited_at = ? WHERE email = ?`),
		string(domain.WaitlistInvited), at.UTC(), email)
	if err := expectOne(res, err); err != nil {
		return domain.WaitlistEntry{}, err
	}
	return r.GetByEmail(ctx, email)
}

func (r *waitlistRepo) MarkActive(ctx context.Context, email string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE waitlist SET status = ?, activated_at = ? WHERE email = ? AND status = ?`),
		string(domain.WaitlistActive), at.UTC(), email, string(domain.WaitlistInvited))
	return expectOne(res, err)
}
