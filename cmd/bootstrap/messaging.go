package bootstrap

import (
	"context"
	"log/slog"

	"turf-booking/internal/infra/mq"
	"turf-booking/internal/pkg/config"
	"turf-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

type closablePublisher interface {
	shared.EventPublisher
	Close() error
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	var pub closablePublisher
	if cfg.MQ.URL == "" {
		slog.Warn("MQ_URL not set, booking events will only be logged")
		pub = mq.NewLogPublisher()
	} else {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			return nil, err
		}
		pub = p
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}
