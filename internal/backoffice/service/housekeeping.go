package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/store"
)

// invitePurgeGrace is how long an expired invitation lingers before the
// housekeeper removes it. Keeping it around lets the accept page report
// "expired" rather than "not found" for a while.
const invitePurgeGrace = 30 * 24 * time.Hour

// HousekeepingService periodically removes rows nothing can use anymore:
// long-expired invitations and expired announcements.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut it
// down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the worker, blocking until any in-progress cleanup
// finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup performs the actual deletions. Each is independent; a failure
// in one never stops the others.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	now := time.Now().UTC()
	s.Logger.Info("starting housekeeping cleanup")

	if err := s.Store.Invitations().DeleteExpiredInvitations(ctx, now.Add(-invitePurgeGrace)); err != nil {
		s.Logger.Error("failed to delete expired invitations", "error", err)
	} else {
		s.Logger.Debug("deleted long-expired invitations")
	}

	if err := s.Store.Announcements().DeleteExpiredAnnouncements(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired announcements", "error", err)
	} else {
		s.Logger.Debug("deleted expired announcements")
	}

	s.Logger.Info("housekeeping cleanup completed")
}
