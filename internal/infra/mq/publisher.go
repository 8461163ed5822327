package mq

import (
	"context"
	"strconv"
	"sync"

	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends booking events to a topic exchange, routed by event type.
// Publishes wait for the broker confirm so the outbox row is only marked once
// the broker owns the message.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "enable publisher confirms")
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, event *shared.OutboxEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	confirm, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, event.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    strconv.FormatInt(event.ID, 10),
		Timestamp:    event.CreatedAt,
		Type:         event.Type,
		Headers: amqp.Table{
			"booking_id": event.BookingID.String(),
		},
		Body: event.Payload,
	})
	if err != nil {
		return errs.Wrapf(err, "publish %s", event.Type)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return errs.Wrapf(err, "await confirm for %s", event.Type)
	}
	if !acked {
		return errs.Newf("broker nacked %s event %d", event.Type, event.ID)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
