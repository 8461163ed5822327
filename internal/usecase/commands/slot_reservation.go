package commands

import (
	"context"
	"log/slog"

	"turf-booking/internal/infra"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/pkg/tracing"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type SlotReservation interface {
	Reserve(ctx context.Context, turfID uuid.UUID, slotID string) error
	Release(ctx context.Context, turfID uuid.UUID, slotID string) error
}

// SlotReservationManager is the only mutual-exclusion point for slots. It holds
// no locks; the store's conditional write decides every race.
type SlotReservationManager struct {
	slots shared.SlotRepository
}

func NewSlotReservationManager(slots shared.SlotRepository) *SlotReservationManager {
	return &SlotReservationManager{slots: slots}
}

func (m *SlotReservationManager) Reserve(ctx context.Context, turfID uuid.UUID, slotID string) (err error) {
	ctx, span := tracing.Start(ctx, "SlotReservationManager.Reserve", slotAttrs(turfID, slotID)...)
	defer func() { tracing.End(span, err) }()

	claimed, err := m.slots.Claim(ctx, turfID, slotID)
	if err != nil {
		return errs.Mark(err, errs.ErrProvider)
	}
	if claimed {
		return nil
	}

	// The follow-up read only explains the failed claim.
	if _, err := m.slots.FindSlot(ctx, turfID, slotID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, errs.ErrProvider)
	}
	return errs.Wrapf(errs.ErrSlotUnavailable, "slot %s of turf %s", slotID, turfID)
}

// Release is idempotent: releasing an available slot succeeds.
func (m *SlotReservationManager) Release(ctx context.Context, turfID uuid.UUID, slotID string) (err error) {
	ctx, span := tracing.Start(ctx, "SlotReservationManager.Release", slotAttrs(turfID, slotID)...)
	defer func() { tracing.End(span, err) }()

	found, err := m.slots.Release(ctx, turfID, slotID)
	if err != nil {
		return errs.Mark(err, errs.ErrProvider)
	}
	if !found {
		return errs.Wrapf(errs.ErrNotFound, "slot %s of turf %s", slotID, turfID)
	}

	slog.InfoContext(ctx, "slot released", "turf_id", turfID.String(), "slot_id", slotID)
	return nil
}

func slotAttrs(turfID uuid.UUID, slotID string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("turf.id", turfID.String()),
		attribute.String("slot.id", slotID),
	}
}
