package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/listing"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store"
	"github.com/aussiebroadwan/propcloud/pkg/idx"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
	"github.com/shopspring/decimal"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingInput struct {
	PropertyID string
	GuestName  string
	GuestEmail *string
	GuestPhone *string
	CheckIn    string // YYYY-MM-DD
	CheckOut   string // YYYY-MM-DD
	// TotalPrice defaults to nights * price per night + cleaning fee.
	TotalPrice *decimal.Decimal
	Status     string
}

var bookingListing = listing.Rule[domain.Booking]{
	Status: func(b domain.Booking) string { return string(b.Status) },
	Fields: func(b domain.Booking) []string {
		return []string{b.GuestName, listing.Deref(b.GuestEmail), b.PropertyName}
	},
}

type BookingService struct {
	Store store.Store
}

// List returns bookings on ownerID's properties by check in date.
func (s *BookingService) List(ctx context.Context, ownerID, status, search string) ([]domain.Booking, error) {
	bookings, err := s.Store.Bookings().ListByOwner(ctx, ownerID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list bookings", slog.Any("error", err))
		return nil, err
	}
	return listing.Apply(bookings, status, search, bookingListing), nil
}

func (s *BookingService) Get(ctx context.Context, ownerID, id string) (domain.Booking, error) {
	b, err := s.Store.Bookings().Get(ctx, ownerID, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// Create books a stay at one of ownerID's properties.
func (s *BookingService) Create(ctx context.Context, ownerID string, in BookingInput) (domain.Booking, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate
	b, err := validateBooking(in)
	if err != nil {
		return domain.Booking{}, err
	}

	// 2. The property must belong to the caller
	prop, err := s.Store.Properties().Get(ctx, ownerID, b.PropertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Booking{}, ErrPropertyNotFound
		}
		log.Error("failed to fetch property", slog.Any("error", err))
		return domain.Booking{}, err
	}

	// 3. Price the stay unless the caller already did
	if in.TotalPrice != nil {
		if in.TotalPrice.IsNegative() {
			return domain.Booking{}, invalid("Total price must not be negative")
		}
		b.TotalPrice = in.TotalPrice.Round(2)
	} else {
		b.TotalPrice = QuoteStay(prop, b.Nights())
	}

	b.ID = idx.New().String()
	b.PropertyName = prop.Name
	b.CreatedAt = now()

	if err := s.Store.Bookings().Create(ctx, b); err != nil {
		log.Error("failed to create booking", slog.Any("error", err))
		return domain.Booking{}, err
	}
	return b, nil
}

// QuoteStay prices nights at p, adding the cleaning fee once.
func QuoteStay(p domain.Property, nights int) decimal.Decimal {
	total := decimal.Zero
	if p.PricePerNight.Valid {
		total = p.PricePerNight.Decimal.Mul(decimal.NewFromInt(int64(nights)))
	}
	if p.CleaningFee.Valid {
		total = total.Add(p.CleaningFee.Decimal)
	}
	return total.Round(2)
}

func (s *BookingService) UpdateStatus(ctx context.Context, ownerID, id, status string) (domain.Booking, error) {
	st := domain.BookingStatus(status)
	if !st.Valid() {
		return domain.Booking{}, invalid("Invalid booking status")
	}

	if err := s.Store.Bookings().UpdateStatus(ctx, ownerID, id, st); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Booking{}, ErrBookingNotFound
		}
		slogx.FromContext(ctx).Error("failed to update booking status", slog.Any("error", err))
		return domain.Booking{}, err
	}
	return s.Get(ctx, ownerID, id)
}

func validateBooking(in BookingInput) (domain.Booking, error) {
	b := domain.Booking{
		PropertyID: strings.TrimSpace(in.PropertyID),
		GuestName:  strings.TrimSpace(in.GuestName),
		GuestEmail: optional(in.GuestEmail),
		GuestPhone: optional(in.GuestPhone),
		Status:     domain.BookingPending,
	}

	if b.PropertyID == "" {
		return b, invalid("Property is required")
	}
	if b.GuestName == "" {
		return b, invalid("Guest name is required")
	}
	if b.GuestEmail != nil && !govalidator.IsEmail(*b.GuestEmail) {
		return b, invalid("Invalid guest email")
	}
	if in.CheckIn == "" || in.CheckOut == "" {
		return b, invalid("Check-in and check-out dates are required")
	}

	var err error
	if b.CheckIn, err = domain.ParseDate(in.CheckIn); err != nil {
		return b, invalid("Invalid check-in date, expected YYYY-MM-DD")
	}
	if b.CheckOut, err = domain.ParseDate(in.CheckOut); err != nil {
		return b, invalid("Invalid check-out date, expected YYYY-MM-DD")
	}
	if !b.CheckOut.After(b.CheckIn) {
		return b, invalid("Check-out must be after check-in")
	}

	if in.Status != "" {
		b.Status = domain.BookingStatus(in.Status)
		if !b.Status.Valid() {
			return b, invalid("Invalid booking status")
		}
	}
	return b, nil
}
