package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type bookingsRepo struct {
	q sqlx.ExtContext
}

type bookingRow struct {
	ID           string          `db:"id"`
	PropertyID   string          `db:"property_id"`
	PropertyName string          `db:"property_name"`
	GuestName    string          `db:"guest_name"`
	GuestEmail   sql.NullString  `db:"guest_email"`
	GuestPhone   sql.NullString  `db:"guest_phone"`
	CheckIn      domain.Date     `db:"check_in"`
	CheckOut     domain.Date     `db:"check_out"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	Status       string          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
}

const bookingSelect = `SELECT b.id, b.property_id, p.name AS property_name, b.guest_name,
	b.guest_email, b.guest_phone, b.check_in, b.check_out, b.total_price, b.status, b.created_at
	FROM bookings b
	JOIN properties p ON p.id = b.property_id`

func mapBooking(row bookingRow) domain.Booking {
	return domain.Booking{
		ID:           row.ID,
		PropertyID:   row.PropertyID,
		PropertyName: row.PropertyName,
		GuestName:    row.GuestName,
		GuestEmail:   mapNullStringPtr(row.GuestEmail),
		GuestPhone:   mapNullStringPtr(row.GuestPhone),
		CheckIn:      row.CheckIn,
		CheckOut:     row.CheckOut,
		TotalPrice:   row.TotalPrice,
		Status:       domain.BookingStatus(row.Status),
		CreatedAt:    row.CreatedAt.UTC(),
	}
}

func (r *bookingsRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	var rows []bookingRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		r.q.Rebind(bookingSelect+` WHERE p.user_id = ? ORDER BY b.check_in ASC, b.id ASC`),
		ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapBooking(row))
	}
	return out, nil
}

func (r *bookingsRepo) Get(ctx context.Context, ownerID, id string) (domain.Booking, error) {
	var row bookingRow
	err := sqlx.GetContext(ctx, r.q, &row,
		r.q.Rebind(bookingSelect+` WHERE b.id = ? AND p.user_id = ?`), id, ownerID)
	if err != nil {
		return domain.Booking{}, mapNotFound(err)
	}
	return mapBooking(row), nil
}

func (r *bookingsRepo) Create(ctx context.Context, b domain.Booking) error {
	_, err := r.q.ExecContext(ctx,
		r.q.Rebind(`INSERT INTO bookings (id, property_id, guest_name, guest_email, guest_phone,
			check_in, check_out, total_price, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		b.ID,
		b.PropertyID,
		b.GuestName,
		mapOptionalString(b.GuestEmail),
		mapOptionalString(b.GuestPhone),
		b.CheckIn,
		b.CheckOut,
		b.TotalPrice,
		string(b.Status),
		b.CreatedAt.UTC(),
	)
	return mapConflict(err)
}

func (r *bookingsRepo) UpdateStatus(ctx context.Context, ownerID, id string, status domain.BookingStatus) error {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE bookings SET status = ?
			WHERE id = ? AND property_id IN (SELECT id FROM properties WHERE user_id = ?)`),
		string(status), id, ownerID)
	return expectOne(res, err)
}
