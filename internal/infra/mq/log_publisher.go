package mq

import (
	"context"
	"log/slog"

	"turf-booking/internal/usecase/shared"
)

// LogPublisher stands in for the broker when MQ_URL is not configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(ctx context.Context, event *shared.OutboxEvent) error {
	slog.InfoContext(ctx, "booking event",
		"event_id", event.ID,
		"type", event.Type,
		"booking_id", event.BookingID.String(),
		"payload", string(event.Payload))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
