package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/vcdoor/internal/door/store"
)

// DefaultPendingUserTTL is how long an account may wait for email validation.
const DefaultPendingUserTTL = 72 * time.Hour

// HousekeepingService periodically removes accounts that never completed
// email validation.
type HousekeepingService struct {
	Store      store.Store
	Logger     *slog.Logger
	Interval   time.Duration
	PendingTTL time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to one hour and a
// non-positive TTL to DefaultPendingUserTTL.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, pendingTTL time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if pendingTTL <= 0 {
		pendingTTL = DefaultPendingUserTTL
	}
	return &HousekeepingService{
		Store:      st,
		Logger:     logger,
		Interval:   interval,
		PendingTTL: pendingTTL,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start runs a cleanup immediately and then on every tick until Stop.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "pending_ttl", s.PendingTTL)
}

// Stop blocks until an in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

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

func (s *HousekeepingService) cleanup() {
	n, err := s.RunOnce(context.Background(), time.Now().UTC())
	if err != nil {
		s.Logger.Error("failed to delete pending users", "error", err)
		return
	}
	s.Logger.Info("housekeeping cleanup completed", "pending_users_deleted", n)
}

// RunOnce deletes pending accounts created more than PendingTTL before now.
func (s *HousekeepingService) RunOnce(ctx context.Context, now time.Time) (int64, error) {
	return s.Store.Users().DeletePendingUsers(ctx, now.Add(-s.PendingTTL))
}
