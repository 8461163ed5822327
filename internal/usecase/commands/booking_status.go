package commands

import (
	"context"
	"log/slog"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/infra"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/config"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/pkg/tracing"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Each lost compare-and-set means the status moved forward, and the graph is
// at most two edges deep.
const maxStatusSwapAttempts = 3

var (
	errStatusKeptChanging = errs.New("booking status kept changing during transition")
	errNoLongerPending    = errs.New("booking is no longer pending")
)

type BookingStatusCommands interface {
	Transition(ctx context.Context, bookingID uuid.UUID, requested booking.Status, callerOwnerID uuid.UUID) (*booking.Booking, error)
	ExpireStale(ctx context.Context) (int, error)
}

type BookingStatusMachine struct {
	reservations SlotReservation
	uow          shared.UnitOfWork
	clock        clock.Clock
	pendingTTL   time.Duration
	batchSize    int
}

func NewBookingStatusMachine(reservations SlotReservation, uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) *BookingStatusMachine {
	return &BookingStatusMachine{
		reservations: reservations,
		uow:          uow,
		clock:        clk,
		pendingTTL:   cfg.Booking.PendingTTL,
		batchSize:    cfg.Booking.ExpiryBatchSize,
	}
}

// Transition applies an owner's status change. Losing a concurrent update
// reloads the booking so the caller is judged against the status that won.
func (m *BookingStatusMachine) Transition(
	ctx context.Context,
	bookingID uuid.UUID,
	requested booking.Status,
	callerOwnerID uuid.UUID,
) (_ *booking.Booking, err error) {
	ctx, span := tracing.Start(ctx, "BookingStatusMachine.Transition",
		attribute.String("booking.id", bookingID.String()),
		attribute.String("booking.requested_status", requested.String()))
	defer func() { tracing.End(span, err) }()

	if !requested.IsValid() {
		return nil, errs.Mark(booking.ErrUnknownStatus, errs.ErrValidation)
	}

	return m.apply(ctx, bookingID, requested, func(b *booking.Booking) error {
		if !b.IsOwnedBy(callerOwnerID) {
			return errs.Wrapf(errs.ErrAccessDenied, "booking %s is not owned by %s", bookingID, callerOwnerID)
		}
		return nil
	})
}

// ExpireStale cancels pending bookings older than the configured TTL and frees
// their slots. Bookings confirmed in the meantime are skipped.
func (m *BookingStatusMachine) ExpireStale(ctx context.Context) (int, error) {
	if m.pendingTTL <= 0 {
		return 0, nil
	}

	cutoff := m.clock.Now().Add(-m.pendingTTL)
	stale, err := m.uow.Bookings().ListStalePending(ctx, cutoff, m.batchSize)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrProvider)
	}

	expired := 0
	for _, b := range stale {
		_, err := m.apply(ctx, b.ID(), booking.StatusCancelled, func(current *booking.Booking) error {
			if current.Status() != booking.StatusPending {
				return errNoLongerPending
			}
			return nil
		})
		switch {
		case err == nil:
			expired++
		case errs.Is(err, errNoLongerPending), errs.Is(err, errs.ErrNotFound):
			continue
		default:
			return expired, err
		}
	}

	if expired > 0 {
		slog.InfoContext(ctx, "expired stale pending bookings", "count", expired, "cutoff", cutoff)
	}
	return expired, nil
}

func (m *BookingStatusMachine) apply(
	ctx context.Context,
	bookingID uuid.UUID,
	requested booking.Status,
	authorize func(*booking.Booking) error,
) (*booking.Booking, error) {
	for attempt := 0; attempt < maxStatusSwapAttempts; attempt++ {
		b, err := m.load(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if err := authorize(b); err != nil {
			return nil, err
		}

		from := b.Status()
		effect, err := b.Transition(requested, m.clock.Now())
		if err != nil {
			return nil, err
		}

		swapped, err := m.persist(ctx, b, from)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrProvider)
		}
		if !swapped {
			slog.DebugContext(ctx, "booking status changed concurrently, reloading",
				"booking_id", bookingID.String(),
				"attempt", attempt+1)
			continue
		}

		slog.InfoContext(ctx, "booking status changed",
			"booking_id", bookingID.String(),
			"from", from.String(),
			"to", requested.String())

		if effect == booking.EffectReleaseSlot {
			m.releaseSlot(ctx, b)
		}
		return b, nil
	}
	return nil, errs.Mark(errStatusKeptChanging, errs.ErrProvider)
}

func (m *BookingStatusMachine) load(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := m.uow.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrProvider)
	}
	return b, nil
}

func (m *BookingStatusMachine) persist(ctx context.Context, b *booking.Booking, from booking.Status) (bool, error) {
	event, err := shared.NewStatusChangedEvent(b, from)
	if err != nil {
		return false, err
	}

	var swapped bool
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Bookings().UpdateStatus(ctx, b.ID(), from, b.Status(), b.UpdatedAt())
		if err != nil || !ok {
			return err
		}
		if err := tx.Outbox().Enqueue(ctx, event); err != nil {
			return err
		}
		swapped = true
		return nil
	})
	return swapped, err
}

// The status change is already committed, so a failed release is reported
// rather than returned. The availability check treats the slot as taken until
// it is released.
func (m *BookingStatusMachine) releaseSlot(ctx context.Context, b *booking.Booking) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	if err := m.reservations.Release(releaseCtx, b.TurfID(), b.SlotID()); err != nil {
		slog.ErrorContext(ctx, "failed to release slot after cancellation",
			"booking_id", b.ID().String(),
			"turf_id", b.TurfID().String(),
			"slot_id", b.SlotID(),
			"error", err.Error())
	}
}
