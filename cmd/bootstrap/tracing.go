package bootstrap

import (
	"context"
	"log/slog"

	"turf-booking/internal/pkg/config"
	"turf-booking/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(
		StartTracing,
	),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := tracing.Init(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := shutdown(ctx); err != nil {
				slog.Error("failed to flush traces", "error", err)
			}
			return nil
		},
	})
	return nil
}
