package worker

import (
	"context"
	"log/slog"
	"time"

	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/config"
	"turf-booking/internal/usecase/shared"
)

// OutboxDispatcher drains booking_events to the publisher. Rows stay locked
// while they are published, so several instances can run side by side.
type OutboxDispatcher struct {
	uow         shared.UnitOfWork
	publisher   shared.EventPublisher
	clock       clock.Clock
	interval    time.Duration
	batchSize   int
	maxAttempts int
}

func NewOutboxDispatcher(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, cfg config.Config) *OutboxDispatcher {
	return &OutboxDispatcher{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		interval:    cfg.Booking.DispatchInterval,
		batchSize:   cfg.Booking.DispatchBatchSize,
		maxAttempts: cfg.Booking.DispatchMaxTries,
	}
}

func (d *OutboxDispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	slog.Info("outbox dispatcher started", "interval", d.interval.String())

	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox dispatcher stopped")
			return
		case <-ticker.C:
			if _, err := d.DispatchOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("failed to dispatch booking events", "error", err.Error())
			}
		}
	}
}

// DispatchOnce publishes one batch and returns how many events were delivered.
// A failed publish is recorded on the row and retried on a later tick.
func (d *OutboxDispatcher) DispatchOnce(ctx context.Context) (int, error) {
	published := 0
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		events, err := tx.Outbox().ClaimUnpublished(ctx, d.batchSize, d.maxAttempts)
		if err != nil {
			return err
		}

		for _, ev := range events {
			if err := d.publisher.Publish(ctx, ev); err != nil {
				slog.WarnContext(ctx, "failed to publish booking event",
					"event_id", ev.ID,
					"type", ev.Type,
					"attempt", ev.Attempts+1,
					"error", err.Error())
				if err := tx.Outbox().MarkFailed(ctx, ev.ID, err.Error()); err != nil {
					return err
				}
				if ev.Attempts+1 >= d.maxAttempts {
					slog.ErrorContext(ctx, "booking event gave up after max attempts",
						"event_id", ev.ID,
						"booking_id", ev.BookingID.String(),
						"type", ev.Type)
				}
				continue
			}
			if err := tx.Outbox().MarkPublished(ctx, ev.ID, d.clock.Now()); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}
