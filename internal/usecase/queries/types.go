package queries

import (
	"time"

	"github.com/google/uuid"
)

// SlotView is the catalog side of a slot as the read store sees it.
type SlotView struct {
	TurfID    uuid.UUID
	SlotID    string
	Start     string
	End       string
	Price     int64
	Available bool
}

// AvailabilitySnapshot reports both facts the availability answer is built from.
type AvailabilitySnapshot struct {
	TurfID          uuid.UUID
	SlotID          string
	Start           string
	End             string
	Price           int64
	SlotAvailable   bool
	HoldingBookings []uuid.UUID
	// Available is true only when the slot flag and the bookings both say free.
	Available  bool
	Consistent bool
}

// BookingView is a booking joined with turf and player details.
type BookingView struct {
	ID          uuid.UUID
	TurfID      uuid.UUID
	TurfName    string
	TurfAddress string
	PlayerID    uuid.UUID
	PlayerName  string
	PlayerEmail string
	PlayerPhone string
	OwnerID     uuid.UUID
	SlotID      string
	Date        string
	Start       string
	End         string
	Amount      int64
	Status      string
	QRUsed      bool
	PaymentID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OwnerBookingFilter struct {
	Status *string
	Since  *time.Time
	Limit  int
}
