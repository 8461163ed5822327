package bootstrap

import (
	"context"

	"turf-booking/internal/pkg/config"
	"turf-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewOutboxDispatcher,
		worker.NewExpiryScheduler,
	),
	fx.Invoke(
		StartWorkers,
	),
)

func StartWorkers(lc fx.Lifecycle, cfg config.Config, dispatcher *worker.OutboxDispatcher, expiry *worker.ExpiryScheduler) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go dispatcher.Start(ctx)
			if cfg.Booking.PendingTTL > 0 {
				go expiry.Start(ctx)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
