package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	RevenueWindowDays = 30
	RecentBookings    = 5
)

// Overview is the dashboard landing summary.
type Overview struct {
	Properties       int
	ActiveProperties int
	UpcomingBookings int
	Revenue30d       decimal.Decimal
	RecentBookings   []domain.Booking // next upcoming stays, soonest first
}

type DashboardService struct {
	Store store.Store
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *DashboardService) Overview(ctx context.Context, ownerID string) (Overview, error) {
	var (
		props    []domain.Property
		bookings []domain.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		props, err = s.Store.Properties().ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.Store.Bookings().ListByOwner(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		slogx.FromContext(ctx).Error("failed to load overview", slog.Any("error", err))
		return Overview{}, err
	}

	clock := s.Now
	if clock == nil {
		clock = time.Now
	}
	return summarize(props, bookings, domain.DateOf(clock().UTC())), nil
}

// summarize expects bookings ordered by check in.
func summarize(props []domain.Property, bookings []domain.Booking, today domain.Date) Overview {
	out := Overview{
		Properties:     len(props),
		Revenue30d:     decimal.Zero,
		RecentBookings: []domain.Booking{},
	}

	for _, p := range props {
		if p.Status == domain.PropertyActive {
			out.ActiveProperties++
		}
	}

	windowStart := today.AddDays(-RevenueWindowDays)
	for _, b := range bookings {
		if b.Status.Earning() && !b.CheckIn.Before(windowStart) && !b.CheckIn.After(today) {
			out.Revenue30d = out.Revenue30d.Add(b.TotalPrice)
		}
		if b.Status == domain.BookingCancelled || b.CheckIn.Before(today) {
			continue
		}
		out.UpcomingBookings++
		if len(out.RecentBookings) < RecentBookings {
			out.RecentBookings = append(out.RecentBookings, b)
		}
	}
	return out
}
