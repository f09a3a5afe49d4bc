package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PropertyStatus string

const (
	PropertyActive      PropertyStatus = "active"
	PropertyInactive    PropertyStatus = "inactive"
	PropertyMaintenance PropertyStatus = "maintenance"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyActive, PropertyInactive, PropertyMaintenance:
		return true
	}
	return false
}

type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeHouse     PropertyType = "house"
	TypeVilla     PropertyType = "villa"
	TypeCondo     PropertyType = "condo"
	TypeCabin     PropertyType = "cabin"
	TypeOther     PropertyType = "other"
)

func (t PropertyType) Valid() bool {
	switch t {
	case TypeApartment, TypeHouse, TypeVilla, TypeCondo, TypeCabin, TypeOther:
		return true
	}
	return false
}

// Property is a rental unit owned by exactly one user.
type Property struct {
	ID            string
	UserID        string
	Name          string
	Description   *string
	PropertyType  *PropertyType
	Status        PropertyStatus
	Address       *string
	City          *string
	State         *string
	ZipCode       *string
	Country       *string
	Bedrooms      *int
	Bathrooms     *float64
	MaxGuests     *int
	PricePerNight decimal.NullDecimal
	CleaningFee   decimal.NullDecimal
	Images        []string
	Amenities     []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
