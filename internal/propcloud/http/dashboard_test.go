package http_test

import (
	"net/http"
	"testing"
	"time"

	propcloudhttp "github.com/aussiebroadwan/propcloud/internal/propcloud/http"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPropertiesCRUD(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{})
	owner := env.session(t, "owner@example.com", false)
	other := env.session(t, "other@example.com", false)

	rec := env.do(t, http.MethodGet, "/api/properties", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/properties", owner, map[string]any{
		"name":            "Harbour Loft",
		"city":            "Sydney",
		"property_type":   "apartment",
		"description":     `<p>Views</p><script>alert(1)</script>`,
		"price_per_night": "180.00",
		"cleaning_fee":    "60",
		"amenities":       []string{"wifi"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[propcloudsdk.Property](t, rec)
	require.Equal(t, "active", created.Status)
	require.Equal(t, "<p>Views</p>", *created.Description)
	require.True(t, created.PricePerNight.Valid)
	require.True(t, created.PricePerNight.Decimal.Equal(decimal.RequireFromString("180")))
	require.Equal(t, []string{"wifi"}, created.Amenities)
	require.Empty(t, created.Images)

	t.Run("validation", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/properties", owner, map[string]any{"name": " "})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Property name is required"}`, rec.Body.String())

		rec = env.do(t, http.MethodPost, "/api/properties", owner, map[string]any{"name": "X", "status": "sold"})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.do(t, http.MethodPost, "/api/properties", owner, map[string]any{"name": "X", "property_type": "castle"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("owner isolation", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/properties/"+created.ID, other, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"Property not found"}`, rec.Body.String())

		rec = env.do(t, http.MethodDelete, "/api/properties/"+created.ID, other, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/properties", other, nil)
		require.Empty(t, decode[propcloudsdk.PropertyListResponse](t, rec).Properties)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/properties/"+created.ID, owner, map[string]any{
			"name":   "Harbour Loft",
			"status": "maintenance",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		updated := decode[propcloudsdk.Property](t, rec)
		require.Equal(t, "maintenance", updated.Status)
		require.Nil(t, updated.City)
		require.False(t, updated.PricePerNight.Valid)
	})

	t.Run("list tab and search", func(t *testing.T) {
		env.do(t, http.MethodPost, "/api/properties", owner, map[string]any{"name": "Beach House", "city": "Byron Bay"})

		rec := env.do(t, http.MethodGet, "/api/properties?status=active&q=byron", owner, nil)
		props := decode[propcloudsdk.PropertyListResponse](t, rec).Properties
		require.Len(t, props, 1)
		require.Equal(t, "Beach House", props[0].Name)

		rec = env.do(t, http.MethodGet, "/api/properties?status=all", owner, nil)
		require.Len(t, decode[propcloudsdk.PropertyListResponse](t, rec).Properties, 2)
	})

	t.Run("delete", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/api/properties/"+created.ID, owner, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/properties/"+created.ID, owner, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBookings(t *testing.T) {
	env := newTestEnv(t, propcloudhttp.Options{})
	owner := env.session(t, "owner@example.com", false)
	other := env.session(t, "other@example.com", false)

	prop := decode[propcloudsdk.Property](t, env.do(t, http.MethodPost, "/api/properties", owner, map[string]any{
		"name":            "Alpine Cabin",
		"price_per_night": "100",
		"cleaning_fee":    "50",
	}))

	checkIn := time.Now().UTC().AddDate(0, 0, 7)
	day := func(t time.Time) string { return t.Format("2006-01-02") }

	t.Run("dates must be ordered", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/bookings", owner, map[string]any{
			"property_id": prop.ID,
			"guest_name":  "Gina Guest",
			"check_in":    day(checkIn),
			"check_out":   day(checkIn),
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Check-out must be after check-in"}`, rec.Body.String())
	})

	t.Run("guest email is validated", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/bookings", owner, map[string]any{
			"property_id": prop.ID,
			"guest_name":  "Gina Guest",
			"guest_email": "nope",
			"check_in":    day(checkIn),
			"check_out":   day(checkIn.AddDate(0, 0, 1)),
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other owners cannot book", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/bookings", other, map[string]any{
			"property_id": prop.ID,
			"guest_name":  "Gina Guest",
			"check_in":    day(checkIn),
			"check_out":   day(checkIn.AddDate(0, 0, 1)),
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"Property not found"}`, rec.Body.String())
	})

	rec := env.do(t, http.MethodPost, "/api/bookings", owner, map[string]any{
		"property_id": prop.ID,
		"guest_name":  "Gina Guest",
		"guest_email": "gina@example.com",
		"check_in":    day(checkIn),
		"check_out":   day(checkIn.AddDate(0, 0, 3)),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	booking := decode[propcloudsdk.Booking](t, rec)
	require.Equal(t, "pending", booking.Status)
	require.Equal(t, 3, booking.Nights)
	require.Equal(t, "Alpine Cabin", booking.PropertyName)
	require.True(t, booking.TotalPrice.Equal(decimal.NewFromInt(350)))

	t.Run("status update", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/bookings/"+booking.ID+"/status", owner, map[string]any{"status": "archived"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Invalid booking status"}`, rec.Body.String())

		rec = env.do(t, http.MethodPatch, "/api/bookings/"+booking.ID+"/status", other, map[string]any{"status": "confirmed"})
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"Booking not found"}`, rec.Body.String())

		rec = env.do(t, http.MethodPatch, "/api/bookings/"+booking.ID+"/status", owner, map[string]any{"status": "confirmed"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "confirmed", decode[propcloudsdk.Booking](t, rec).Status)
	})

	t.Run("list search", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/bookings?q=alpine", owner, nil)
		require.Len(t, decode[propcloudsdk.BookingListResponse](t, rec).Bookings, 1)

		rec = env.do(t, http.MethodGet, "/api/bookings?status=cancelled", owner, nil)
		require.Empty(t, decode[propcloudsdk.BookingListResponse](t, rec).Bookings)

		rec = env.do(t, http.MethodGet, "/api/bookings", other, nil)
		require.Empty(t, decode[propcloudsdk.BookingListResponse](t, rec).Bookings)
	})

	t.Run("overview", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/dashboard/overview", owner, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		o := decode[propcloudsdk.OverviewResponse](t, rec)
		require.Equal(t, 1, o.Properties)
		require.Equal(t, 1, o.ActiveProperties)
		require.Equal(t, 1, o.UpcomingBookings)
		require.Len(t, o.RecentBookings, 1)
		// Revenue counts stays that already started in the last 30 days.
		require.True(t, o.Revenue30d.IsZero())
	})
}
