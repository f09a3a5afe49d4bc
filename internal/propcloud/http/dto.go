package http

import (
	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
)

func toWaitlistEntry(e domain.WaitlistEntry) propcloudsdk.WaitlistEntry {
	return propcloudsdk.WaitlistEntry{
		ID:               e.ID,
		Email:            e.Email,
		FullName:         e.FullName,
		CompanyName:      e.CompanyName,
		PropertiesCount:  e.PropertiesCount,
		Phone:            e.Phone,
		Website:          e.Website,
		CurrentSoftware:  e.CurrentSoftware,
		PainPoints:       e.PainPoints,
		MarketingConsent: e.MarketingConsent,
		Position:         e.Position,
		Status:           string(e.Status),
		CreatedAt:        e.CreatedAt,
		InvitedAt:        e.InvitedAt,
		ActivatedAt:      e.ActivatedAt,
	}
}

func toUser(u domain.User) propcloudsdk.User {
	return propcloudsdk.User{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           u.Role,
		EmailConfirmed: u.Confirmed(),
	}
}

func toProperty(p domain.Property) propcloudsdk.Property {
	var kind *string
	if p.PropertyType != nil {
		k := string(*p.PropertyType)
		kind = &k
	}
	return propcloudsdk.Property{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PropertyType:  kind,
		Status:        string(p.Status),
		Address:       p.Address,
		City:          p.City,
		State:         p.State,
		ZipCode:       p.ZipCode,
		Country:       p.Country,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		MaxGuests:     p.MaxGuests,
		PricePerNight: p.PricePerNight,
		CleaningFee:   p.CleaningFee,
		Images:        p.Images,
		Amenities:     p.Amenities,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toPropertyInput(req propcloudsdk.PropertyRequest) service.PropertyInput {
	return service.PropertyInput{
		Name:          req.Name,
		Description:   req.Description,
		PropertyType:  req.PropertyType,
		Status:        req.Status,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		MaxGuests:     req.MaxGuests,
		PricePerNight: req.PricePerNight,
		CleaningFee:   req.CleaningFee,
		Images:        req.Images,
		Amenities:     req.Amenities,
	}
}

func toBooking(b domain.Booking) propcloudsdk.Booking {
	return propcloudsdk.Booking{
		ID:           b.ID,
		PropertyID:   b.PropertyID,
		PropertyName: b.PropertyName,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		GuestPhone:   b.GuestPhone,
		CheckIn:      b.CheckIn.String(),
		CheckOut:     b.CheckOut.String(),
		Nights:       b.Nights(),
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

func toBookings(bs []domain.Booking) []propcloudsdk.Booking {
	out := make([]propcloudsdk.Booking, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBooking(b))
	}
	return out
}
