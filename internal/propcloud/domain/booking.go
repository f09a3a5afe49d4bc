package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Earning reports whether the booking counts towards revenue.
func (s BookingStatus) Earning() bool {
	return s == BookingConfirmed || s == BookingCompleted
}

// Booking is a stay at a property. Ownership follows the property.
type Booking struct {
	ID           string
	PropertyID   string
	PropertyName string // joined from the property on reads
	GuestName    string
	GuestEmail   *string
	GuestPhone   *string
	CheckIn      Date
	CheckOut     Date
	TotalPrice   decimal.Decimal
	Status       BookingStatus
	CreatedAt    time.Time
}

// Nights is the number of nights between check in and check out.
func (b Booking) Nights() int {
	return b.CheckIn.DaysUntil(b.CheckOut)
}
