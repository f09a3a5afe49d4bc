package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDashboardOverview(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	props := &service.PropertyService{Store: st}
	bookings := &service.BookingService{Store: st}
	owner := newOwner(t, st, "owner@example.com")

	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	dash := &service.DashboardService{Store: st, Now: func() time.Time { return today }}

	empty, err := dash.Overview(ctx, owner)
	require.NoError(t, err)
	require.Zero(t, empty.Properties)
	require.True(t, empty.Revenue30d.IsZero())
	require.Empty(t, empty.RecentBookings)

	p, err := props.Create(ctx, owner, service.PropertyInput{Name: "Villa"})
	require.NoError(t, err)
	_, err = props.Create(ctx, owner, service.PropertyInput{Name: "Shed", Status: "inactive"})
	require.NoError(t, err)

	book := func(guest, in, out, total, status string) {
		t.Helper()
		price := decimal.RequireFromString(total)
		_, err := bookings.Create(ctx, owner, service.BookingInput{
			PropertyID: p.ID, GuestName: guest, CheckIn: in, CheckOut: out, TotalPrice: &price, Status: status,
		})
		require.NoError(t, err)
	}
	book("recent-confirmed", "2025-06-01", "2025-06-03", "200", "confirmed")
	book("recent-completed", "2025-05-20", "2025-05-22", "150.25", "completed")
	book("too-old", "2025-04-01", "2025-04-03", "999", "completed")
	book("recent-pending", "2025-06-10", "2025-06-12", "500", "pending")
	book("upcoming", "2025-06-20", "2025-06-25", "800", "confirmed")
	book("today", "2025-06-15", "2025-06-16", "50", "pending")
	book("cancelled", "2025-07-01", "2025-07-02", "70", "cancelled")

	ov, err := dash.Overview(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, 2, ov.Properties)
	require.Equal(t, 1, ov.ActiveProperties)
	require.Equal(t, 2, ov.UpcomingBookings)
	require.True(t, ov.Revenue30d.Equal(decimal.RequireFromString("350.25")), ov.Revenue30d.String())
	require.Len(t, ov.RecentBookings, 2)
	require.Equal(t, "today", ov.RecentBookings[0].GuestName)
	require.Equal(t, "upcoming", ov.RecentBookings[1].GuestName)
}

func TestHousekeepingCleanup(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	n := &fakeNotifier{}
	auth, _ := newAuthService(t, st, n)

	_, err := auth.Signup(ctx, service.SignupInput{Email: "h@example.com", Password: "password123"})
	require.NoError(t, err)
	confirm, _ := n.last("confirm")
	require.NoError(t, auth.Confirm(ctx, confirm.token))

	hk := service.NewHousekeepingService(st, discardLogger(), time.Hour)
	hk.Cleanup(ctx)

	deleted, err := st.AuthTokens().DeleteStale(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Zero(t, deleted)
}
