package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/metrics"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
)

// HousekeepingService deletes invitations that were never redeemed and
// expired more than Retention ago. Consumed and revoked invitations are the
// audit trail and are kept.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Interval  time.Duration
	Retention time.Duration
	Clock     Clock
}

// NewHousekeepingService defaults a non-positive interval to one hour. A
// zero retention disables purging.
func NewHousekeepingService(
	st store.Store,
	logger *slog.Logger,
	m *metrics.Metrics,
	interval time.Duration,
	retention time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Metrics:   m,
		Interval:  interval,
		Retention: retention,
	}
}

// Enabled reports whether a retention window is configured.
func (s *HousekeepingService) Enabled() bool { return s.Retention > 0 }

// Run purges once immediately and then every Interval until ctx is done.
// It returns nil straight away when disabled.
func (s *HousekeepingService) Run(ctx context.Context) error {
	if !s.Enabled() {
		s.Logger.Info("housekeeping disabled")
		return nil
	}

	s.Logger.Info("housekeeping started",
		slog.Duration("interval", s.Interval),
		slog.Duration("retention", s.Retention),
	)
	defer s.Logger.Info("housekeeping stopped")

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		s.Purge(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Purge deletes stale invitations once and returns how many went.
func (s *HousekeepingService) Purge(ctx context.Context) int {
	if !s.Enabled() {
		return 0
	}

	cutoff := s.Clock.now().Add(-s.Retention)
	n, err := s.Store.Invitations().DeleteStaleInvitations(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			s.Logger.Error("purge stale invitations", slog.Any("error", err))
		}
		return 0
	}

	s.Metrics.AddInvitationsPurged(n)
	s.Logger.Info("purged stale invitations",
		slog.Int("deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return n
}
