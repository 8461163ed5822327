package shared

import (
	"context"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Bookings: Single statements outside a transaction
	Bookings() BookingRepository
}

type Tx interface {
	Bookings() BookingRepository
	Outbox() OutboxRepository
	Profiles() ProfileRepository
	Turfs() TurfRepository
}
