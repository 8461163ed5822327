package commands

import (
	"context"
	"log/slog"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/profile"
	"turf-booking/internal/infra"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/pkg/tracing"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// compensation must outlive an abandoned request
const compensationTimeout = 5 * time.Second

type CreateBookingInput struct {
	TurfID   uuid.UUID
	SlotID   string
	Date     string
	Start    string
	End      string
	Identity profile.Identity
	Amount   int64
	QRUsed   bool
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*booking.Booking, error)
}

// BookingLifecycle runs booking creation as a saga: the slot claim is the one
// irreversible step, and every later failure releases it again.
type BookingLifecycle struct {
	reservations SlotReservation
	profiles     ProfileCommands
	slots        shared.SlotRepository
	uow          shared.UnitOfWork
	clock        clock.Clock
}

func NewBookingLifecycle(
	reservations SlotReservation,
	profiles ProfileCommands,
	slots shared.SlotRepository,
	uow shared.UnitOfWork,
	clk clock.Clock,
) *BookingLifecycle {
	return &BookingLifecycle{
		reservations: reservations,
		profiles:     profiles,
		slots:        slots,
		uow:          uow,
		clock:        clk,
	}
}

func (l *BookingLifecycle) Create(ctx context.Context, in CreateBookingInput) (_ *booking.Booking, err error) {
	ctx, span := tracing.Start(ctx, "BookingLifecycle.Create", slotAttrs(in.TurfID, in.SlotID)...)
	defer func() { tracing.End(span, err) }()

	snapshot, amount, err := validateCreateInput(in)
	if err != nil {
		return nil, err
	}

	if err := l.reservations.Reserve(ctx, in.TurfID, in.SlotID); err != nil {
		return nil, err
	}

	b, err := l.createReserved(ctx, in, snapshot, amount)
	if err == nil {
		span.SetAttributes(attribute.String("booking.id", b.ID().String()))
		slog.InfoContext(ctx, "booking created",
			"booking_id", b.ID().String(),
			"turf_id", in.TurfID.String(),
			"slot_id", in.SlotID,
			"player_id", b.PlayerID().String())
		return b, nil
	}

	// Another live booking already holds this slot, so the claim we just made
	// matches reality and must stay.
	if infra.IsLiveSlotConflict(err) {
		slog.WarnContext(ctx, "slot claimed while a live booking existed",
			"turf_id", in.TurfID.String(),
			"slot_id", in.SlotID)
		return nil, errs.Mark(err, errs.ErrSlotUnavailable)
	}

	l.compensate(ctx, in.TurfID, in.SlotID, err)

	if errs.Classified(err) {
		return nil, err
	}
	return nil, errs.Mark(err, errs.ErrProvider)
}

func (l *BookingLifecycle) createReserved(
	ctx context.Context,
	in CreateBookingInput,
	snapshot booking.SlotSnapshot,
	amount booking.Amount,
) (*booking.Booking, error) {
	player, err := l.profiles.ResolveOrCreate(ctx, in.Identity, profile.RolePlayer)
	if err != nil {
		return nil, err
	}

	ownerID, err := l.slots.TurfOwner(ctx, in.TurfID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}

	b := booking.NewBooking(booking.NewBookingParams{
		TurfID:   in.TurfID,
		PlayerID: player.ID(),
		OwnerID:  ownerID,
		SlotID:   in.SlotID,
		Slot:     snapshot,
		Amount:   amount,
		QRUsed:   in.QRUsed,
	}, l.clock.Now())

	event, err := shared.NewBookingCreatedEvent(b)
	if err != nil {
		return nil, err
	}

	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Insert(ctx, b); err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// compensate releases the slot; a failed release is logged and the original
// error still wins.
func (l *BookingLifecycle) compensate(ctx context.Context, turfID uuid.UUID, slotID string, cause error) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	if err := l.reservations.Release(releaseCtx, turfID, slotID); err != nil {
		slog.ErrorContext(ctx, "compensation failed: slot left unavailable without a booking",
			"turf_id", turfID.String(),
			"slot_id", slotID,
			"cause", cause.Error(),
			"release_error", err.Error())
		return
	}
	slog.WarnContext(ctx, "booking creation failed after reserve, slot released",
		"turf_id", turfID.String(),
		"slot_id", slotID,
		"cause", cause.Error())
}

func validateCreateInput(in CreateBookingInput) (booking.SlotSnapshot, booking.Amount, error) {
	if in.TurfID == uuid.Nil {
		return booking.SlotSnapshot{}, booking.Amount{}, errs.Mark(errs.New("turf id is required"), errs.ErrValidation)
	}
	if in.SlotID == "" {
		return booking.SlotSnapshot{}, booking.Amount{}, errs.Mark(errs.New("slot id is required"), errs.ErrValidation)
	}
	snapshot, err := booking.NewSlotSnapshot(in.Date, in.Start, in.End)
	if err != nil {
		return booking.SlotSnapshot{}, booking.Amount{}, errs.Mark(err, errs.ErrValidation)
	}
	amount, err := booking.NewAmount(in.Amount)
	if err != nil {
		return booking.SlotSnapshot{}, booking.Amount{}, errs.Mark(err, errs.ErrValidation)
	}
	return snapshot, amount, nil
}
