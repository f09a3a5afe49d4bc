package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/store"
)

// HousekeepingService periodically deletes spent auth tokens so the
// auth_tokens table does not grow without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to one hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup deletes tokens that expired or were consumed before now.
func (s *HousekeepingService) Cleanup(ctx context.Context) {
	deleted, err := s.Store.AuthTokens().DeleteStale(ctx, time.Now().UTC())
	if err != nil {
		s.Logger.Error("failed to delete stale auth tokens", "error", err)
		return
	}
	s.Logger.Info("housekeeping cleanup completed", "deleted_tokens", deleted)
}
