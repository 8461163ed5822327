package pgsql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Turfs struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Address      string
	PricePerHour int64
	CreatedAt    pgtype.Timestamptz
}

type TurfSlots struct {
	TurfID    uuid.UUID
	SlotID    string
	StartTime string
	EndTime   string
	Price     int64
	Available bool
	UpdatedAt pgtype.Timestamptz
}

type Profiles struct {
	ID         uuid.UUID
	ExternalID string
	Role       string
	Name       string
	Email      string
	Phone      string
	CreatedAt  pgtype.Timestamptz
	LastActive pgtype.Timestamptz
}

type Bookings struct {
	ID        uuid.UUID
	TurfID    uuid.UUID
	PlayerID  uuid.UUID
	OwnerID   uuid.UUID
	SlotID    string
	SlotDate  pgtype.Date
	StartTime string
	EndTime   string
	Amount    int64
	Status    string
	QrUsed    bool
	PaymentID pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type BookingEvents struct {
	ID          int64
	BookingID   uuid.UUID
	EventType   string
	Payload     []byte
	Attempts    int32
	LastError   pgtype.Text
	CreatedAt   pgtype.Timestamptz
	PublishedAt pgtype.Timestamptz
}
