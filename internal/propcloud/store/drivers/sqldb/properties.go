package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type propertiesRepo struct {
	q sqlx.ExtContext
}

type propertyRow struct {
	ID            string              `db:"id"`
	UserID        string              `db:"user_id"`
	Name          string              `db:"name"`
	Description   sql.NullString      `db:"description"`
	PropertyType  sql.NullString      `db:"property_type"`
	Status        string              `db:"status"`
	Address       sql.NullString      `db:"address"`
	City          sql.NullString      `db:"city"`
	State         sql.NullString      `db:"state"`
	ZipCode       sql.NullString      `db:"zip_code"`
	Country       sql.NullString      `db:"country"`
	Bedrooms      sql.NullInt64       `db:"bedrooms"`
	Bathrooms     sql.NullFloat64     `db:"bathrooms"`
	MaxGuests     sql.NullInt64       `db:"max_guests"`
	PricePerNight decimal.NullDecimal `db:"price_per_night"`
	CleaningFee   decimal.NullDecimal `db:"cleaning_fee"`
	Images        jsonList            `db:"images"`
	Amenities     jsonList            `db:"amenities"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
}

const propertyColumns = `id, user_id, name, description, property_type, status, address, city,
	state, zip_code, country, bedrooms, bathrooms, max_guests, price_per_night, cleaning_fee,
	images, amenities, created_at, updated_at`

func mapProperty(row propertyRow) domain.Property {
	var kind *domain.PropertyType
	if row.PropertyType.Valid {
		k := domain.PropertyType(row.PropertyType.String)
		kind = &k
	}
	images := []string(row.Images)
	if images == nil {
		images = []string{}
	}
	amenities := []string(row.Amenities)
	if amenities == nil {
		amenities = []string{}
	}

	return domain.Property{
		ID:            row.ID,
		UserID:        row.UserID,
		Name:          row.Name,
		Description:   mapNullStringPtr(row.Description),
		PropertyType:  kind,
		Status:        domain.PropertyStatus(row.Status),
		Address:       mapNullStringPtr(row.Address),
		City:          mapNullStringPtr(row.City),
		State:         mapNullStringPtr(row.State),
		ZipCode:       mapNullStringPtr(row.ZipCode),
		Country:       mapNullStringPtr(row.Country),
		Bedrooms:      mapNullIntPtr(row.Bedrooms),
		Bathrooms:     mapNullFloatPtr(row.Bathrooms),
		MaxGuests:     mapNullIntPtr(row.MaxGuests),
		PricePerNight: row.PricePerNight,
		CleaningFee:   row.CleaningFee,
		Images:        images,
		Amenities:     amenities,
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}
}

func optionalType(t *domain.PropertyType) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*t), Valid: true}
}

func (r *propertiesRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	var rows []propertyRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		r.q.Rebind(`SELECT `+propertyColumns+` FROM properties WHERE user_id = ? ORDER BY created_at DESC, id DESC`),
		ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Property, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapProperty(row))
	}
	return out, nil
}

func (r *propertiesRepo) Get(ctx context.Context, ownerID, id string) (domain.Property, error) {
	var row propertyRow
	err := sqlx.GetContext(ctx, r.q, &row,
		r.q.Rebind(`SELECT `+propertyColumns+` FROM properties WHERE id = ? AND user_id = ?`),
		id, ownerID)
	if err != nil {
		return domain.Property{}, mapNotFound(err)
	}
	return mapProperty(row), nil
}

func (r *propertiesRepo) Create(ctx context.Context, p domain.Property) error {
	_, err := r.q.ExecContext(ctx,
		r.q.Rebind(`INSERT INTO properties (`+propertyColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		p.ID,
		p.UserID,
		p.Name,
		mapOptionalString(p.Description),
		optionalType(p.PropertyType),
		string(p.Status),
		mapOptionalString(p.Address),
		mapOptionalString(p.City),
		mapOptionalString(p.State),
		mapOptionalString(p.ZipCode),
		mapOptionalString(p.Country),
		mapOptionalInt(p.Bedrooms),
		mapOptionalFloat(p.Bathrooms),
		mapOptionalInt(p.MaxGuests),
		p.PricePerNight,
		p.CleaningFee,
		jsonList(p.Images),
		jsonList(p.Amenities),
		p.CreatedAt.UTC(),
		p.UpdatedAt.UTC(),
	)
	return mapConflict(err)
}

func (r *propertiesRepo) Update(ctx context.Context, p domain.Property) error {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE properties SET
			name = ?, description = ?, property_type = ?, status = ?, address = ?, city = ?,
			state = ?, zip_code = ?, country = ?, bedrooms = ?, bathrooms = ?, max_guests = ?,
			price_per_night = ?, cleaning_fee = ?, images = ?, amenities = ?, updated_at = ?
			WHERE id = ? AND user_id = ?`),
		p.Name,
		mapOptionalString(p.Description),
		optionalType(p.PropertyType),
		string(p.Status),
		mapOptionalString(p.Address),
		mapOptionalString(p.City),
		mapOptionalString(p.State),
		mapOptionalString(p.ZipCode),
		mapOptionalString(p.Country),
		mapOptionalInt(p.Bedrooms),
		mapOptionalFloat(p.Bathrooms),
		mapOptionalInt(p.MaxGuests),
		p.PricePerNight,
		p.CleaningFee,
		jsonList(p.Images),
		jsonList(p.Amenities),
		p.UpdatedAt.UTC(),
		p.ID,
		p.UserID,
	)
	return expectOne(res, err)
}

func (r *propertiesRepo) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`DELETE FROM properties WHERE id = ? AND user_id = ?`), id, ownerID)
	return expectOne(res, err)
}
