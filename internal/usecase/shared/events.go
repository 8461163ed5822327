package shared

import (
	"encoding/json"
	"time"

	"turf-booking/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	EventBookingCreated = "booking.created"
	eventPrefix         = "booking."
)

// BookingEvent is written to the outbox in the same transaction as the booking change.
type BookingEvent struct {
	BookingID  uuid.UUID
	Type       string
	Payload    []byte
	OccurredAt time.Time
}

type OutboxEvent struct {
	ID        int64
	BookingID uuid.UUID
	Type      string
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
}

type bookingEventPayload struct {
	BookingID string `json:"bookingId"`
	TurfID    string `json:"turfId"`
	SlotID    string `json:"slotId"`
	PlayerID  string `json:"playerId"`
	OwnerID   string `json:"ownerId"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	From      string `json:"from,omitempty"`
	At        string `json:"at"`
}

func NewBookingCreatedEvent(b *booking.Booking) (BookingEvent, error) {
	return newBookingEvent(EventBookingCreated, b, "", b.CreatedAt())
}

func NewStatusChangedEvent(b *booking.Booking, from booking.Status) (BookingEvent, error) {
	return newBookingEvent(StatusEventType(b.Status()), b, from, b.UpdatedAt())
}

func StatusEventType(s booking.Status) string {
	return eventPrefix + s.String()
}

func newBookingEvent(eventType string, b *booking.Booking, from booking.Status, at time.Time) (BookingEvent, error) {
	payload, err := json.Marshal(bookingEventPayload{
		BookingID: b.ID().String(),
		TurfID:    b.TurfID().String(),
		SlotID:    b.SlotID(),
		PlayerID:  b.PlayerID().String(),
		OwnerID:   b.OwnerID().String(),
		Date:      b.Slot().DateString(),
		Start:     b.Slot().Start(),
		End:       b.Slot().End(),
		Amount:    b.Amount().Int64(),
		Status:    b.Status().String(),
		From:      from.String(),
		At:        at.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return BookingEvent{}, err
	}
	return BookingEvent{
		BookingID:  b.ID(),
		Type:       eventType,
		Payload:    payload,
		OccurredAt: at,
	}, nil
}
