package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/listing"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store"
	"github.com/aussiebroadwan/propcloud/pkg/idx"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

var ErrPropertyNotFound = errors.New("property not found")

// PropertyInput carries the editable fields of a property. Create and
// update apply the same rules; update replaces every field.
type PropertyInput struct {
	Name          string
	Description   *string
	PropertyType  *string
	Status        string
	Address       *string
	City          *string
	State         *string
	ZipCode       *string
	Country       *string
	Bedrooms      *int
	Bathrooms     *float64
	MaxGuests     *int
	PricePerNight *decimal.Decimal
	CleaningFee   *decimal.Decimal
	Images        []string
	Amenities     []string
}

var propertyListing = listing.Rule[domain.Property]{
	Status: func(p domain.Property) string { return string(p.Status) },
	Fields: func(p domain.Property) []string {
		return []string{p.Name, listing.Deref(p.City), listing.Deref(p.Address)}
	},
}

var descriptionPolicy = bluemonday.UGCPolicy()

type PropertyService struct {
	Store store.Store
}

func (s *PropertyService) List(ctx context.Context, ownerID, status, search string) ([]domain.Property, error) {
	props, err := s.Store.Properties().ListByOwner(ctx, ownerID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list properties", slog.Any("error", err))
		return nil, err
	}
	return listing.Apply(props, status, search, propertyListing), nil
}

func (s *PropertyService) Get(ctx context.Context, ownerID, id string) (domain.Property, error) {
	p, err := s.Store.Properties().Get(ctx, ownerID, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Property{}, ErrPropertyNotFound
	}
	return p, err
}

// Create stores a new property owned by ownerID.
func (s *PropertyService) Create(ctx context.Context, ownerID string, in PropertyInput) (domain.Property, error) {
	at := now()
	p := domain.Property{
		ID:        idx.New().String(),
		UserID:    ownerID,
		CreatedAt: at,
		UpdatedAt: at,
	}
	if err := applyPropertyInput(&p, in); err != nil {
		return domain.Property{}, err
	}

	if err := s.Store.Properties().Create(ctx, p); err != nil {
		slogx.FromContext(ctx).Error("failed to create property", slog.Any("error", err))
		return domain.Property{}, err
	}
	return p, nil
}

// Update replaces the editable fields of one of ownerID's properties.
func (s *PropertyService) Update(ctx context.Context, ownerID, id string, in PropertyInput) (domain.Property, error) {
	current, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return domain.Property{}, err
	}

	if err := applyPropertyInput(&current, in); err != nil {
		return domain.Property{}, err
	}
	current.UpdatedAt = now()

	if err := s.Store.Properties().Update(ctx, current); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Property{}, ErrPropertyNotFound
		}
		slogx.FromContext(ctx).Error("failed to update property", slog.Any("error", err))
		return domain.Property{}, err
	}
	return current, nil
}

// Delete removes the property together with its bookings.
func (s *PropertyService) Delete(ctx context.Context, ownerID, id string) error {
	err := s.Store.Properties().Delete(ctx, ownerID, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrPropertyNotFound
	}
	return err
}

func applyPropertyInput(p *domain.Property, in PropertyInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return invalid("Property name is required")
	}

	status := domain.PropertyActive
	if in.Status != "" {
		status = domain.PropertyStatus(in.Status)
		if !status.Valid() {
			return invalid("Invalid property status")
		}
	}

	var kind *domain.PropertyType
	if t := optional(in.PropertyType); t != nil {
		k := domain.PropertyType(*t)
		if !k.Valid() {
			return invalid("Invalid property type")
		}
		kind = &k
	}

	for _, n := range []*int{in.Bedrooms, in.MaxGuests} {
		if n != nil && *n < 0 {
			return invalid("Counts must not be negative")
		}
	}
	if in.Bathrooms != nil && *in.Bathrooms < 0 {
		return invalid("Counts must not be negative")
	}

	price, err := money(in.PricePerNight)
	if err != nil {
		return err
	}
	fee, err := money(in.CleaningFee)
	if err != nil {
		return err
	}

	var description *string
	if d := optional(in.Description); d != nil {
		clean := descriptionPolicy.Sanitize(*d)
		description = &clean
	}

	p.Name = name
	p.Description = description
	p.PropertyType = kind
	p.Status = status
	p.Address = optional(in.Address)
	p.City = optional(in.City)
	p.State = optional(in.State)
	p.ZipCode = optional(in.ZipCode)
	p.Country = optional(in.Country)
	p.Bedrooms = in.Bedrooms
	p.Bathrooms = in.Bathrooms
	p.MaxGuests = in.MaxGuests
	p.PricePerNight = price
	p.CleaningFee = fee
	p.Images = nonNil(in.Images)
	p.Amenities = nonNil(in.Amenities)
	return nil
}

func money(d *decimal.Decimal) (decimal.NullDecimal, error) {
	if d == nil {
		return decimal.NullDecimal{}, nil
	}
	if d.IsNegative() {
		return decimal.NullDecimal{}, invalid("Prices must not be negative")
	}
	return decimal.NewNullDecimal(d.Round(2)), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
