package worker

import (
	"context"
	"log/slog"
	"time"

	"turf-booking/internal/pkg/config"
	"turf-booking/internal/usecase/commands"
)

// ExpiryScheduler cancels pending bookings that were never confirmed.
type ExpiryScheduler struct {
	expirer  commands.BookingStatusCommands
	interval time.Duration
}

func NewExpiryScheduler(expirer commands.BookingStatusCommands, cfg config.Config) *ExpiryScheduler {
	return &ExpiryScheduler{
		expirer:  expirer,
		interval: cfg.Booking.ExpiryInterval,
	}
}

func (s *ExpiryScheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("expiry scheduler started", "interval", s.interval.String())

	for {
		select {
		case <-ctx.Done():
			slog.Info("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *ExpiryScheduler) tick(ctx context.Context) {
	if _, err := s.expirer.ExpireStale(ctx); err != nil && ctx.Err() == nil {
		slog.Error("failed to expire stale bookings", "error", err.Error())
	}
}
