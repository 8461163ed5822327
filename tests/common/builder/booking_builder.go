//go:build unit || e2e

package builder

import (
	"time"

	"turf-booking/internal/domain/booking"
	reqdto "turf-booking/internal/handler/dto/request"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID        uuid.UUID
	TurfID    uuid.UUID
	PlayerID  uuid.UUID
	OwnerID   uuid.UUID
	SlotID    string
	Date      string
	Start     string
	End       string
	Amount    int64
	Status    booking.Status
	QRUsed    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:        uuid.New(),
		TurfID:    uuid.New(),
		PlayerID:  uuid.New(),
		OwnerID:   uuid.New(),
		SlotID:    "slot-18",
		Date:      "2026-03-20",
		Start:     "18:00",
		End:       "19:00",
		Amount:    1200,
		Status:    booking.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	snapshot, err := booking.NewSlotSnapshot(b.Date, b.Start, b.End)
	if err != nil {
		panic(err)
	}
	amount, err := booking.NewAmount(b.Amount)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID, b.TurfID, b.PlayerID, b.OwnerID,
		b.SlotID,
		snapshot,
		amount,
		b.Status,
		b.QRUsed,
		nil,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() pgsql.Bookings {
	date, err := time.Parse(booking.DateLayout, b.Date)
	if err != nil {
		panic(err)
	}
	return pgsql.Bookings{
		ID:        b.ID,
		TurfID:    b.TurfID,
		PlayerID:  b.PlayerID,
		OwnerID:   b.OwnerID,
		SlotID:    b.SlotID,
		SlotDate:  pgtype.Date{Time: date, Valid: true},
		StartTime: b.Start,
		EndTime:   b.End,
		Amount:    b.Amount,
		Status:    b.Status.String(),
		QrUsed:    b.QRUsed,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	amount := b.Amount
	return reqdto.CreateBookingRequest{
		TurfID: b.TurfID,
		SlotID: b.SlotID,
		Slot: reqdto.SlotRequest{
			Date:  b.Date,
			Start: b.Start,
			End:   b.End,
		},
		Amount: &amount,
		QRUsed: b.QRUsed,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		TurfID:      b.TurfID,
		TurfName:    "Green Field Arena",
		TurfAddress: "12 Stadium Road",
		PlayerID:    b.PlayerID,
		PlayerName:  "Test Player",
		PlayerEmail: "player@example.com",
		OwnerID:     b.OwnerID,
		SlotID:      b.SlotID,
		Date:        b.Date,
		Start:       b.Start,
		End:         b.End,
		Amount:      b.Amount,
		Status:      b.Status.String(),
		QRUsed:      b.QRUsed,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
