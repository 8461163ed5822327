package shared

import (
	"context"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/profile"
	"turf-booking/internal/domain/turf"

	"github.com/google/uuid"
)

// SlotRepository is the only writer of slot availability.
type SlotRepository interface {
	// Claim flips available to false only if it is currently true. false means
	// the conditional write matched nothing.
	Claim(ctx context.Context, turfID uuid.UUID, slotID string) (bool, error)
	// Release sets available to true unconditionally. false means no such slot.
	Release(ctx context.Context, turfID uuid.UUID, slotID string) (bool, error)
	FindSlot(ctx context.Context, turfID uuid.UUID, slotID string) (*turf.Slot, error)
	TurfOwner(ctx context.Context, turfID uuid.UUID) (uuid.UUID, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus is a compare-and-set on the current status. false means the
	// stored status was no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (bool, error)
	ListStalePending(ctx context.Context, createdBefore time.Time, limit int) ([]*booking.Booking, error)
}

type ProfileRepository interface {
	// Upsert inserts p or returns the stored profile with the same external id.
	Upsert(ctx context.Context, p *profile.Profile) (*profile.Profile, bool, error)
	FindByExternalID(ctx context.Context, externalID string) (*profile.Profile, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, event BookingEvent) error
	ClaimUnpublished(ctx context.Context, limit, maxAttempts int) ([]*OutboxEvent, error)
	MarkPublished(ctx context.Context, id int64, at time.Time) error
	MarkFailed(ctx context.Context, id int64, reason string) error
}

type TurfRepository interface {
	Create(ctx context.Context, t *turf.Turf, slots []*turf.Slot) error
}

// EventPublisher delivers outbox events. Delivery is at least once; consumers
// dedupe on the event id.
type EventPublisher interface {
	Publish(ctx context.Context, event *OutboxEvent) error
}
