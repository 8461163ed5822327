package queries

import (
	"context"
	"log/slog"

	"turf-booking/internal/infra"
	"turf-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	Check(ctx context.Context, turfID uuid.UUID, slotID string) (*AvailabilitySnapshot, error)
}

type AvailabilityReadStore interface {
	FindSlot(ctx context.Context, turfID uuid.UUID, slotID string) (*SlotView, error)
	HoldingBookingIDs(ctx context.Context, turfID uuid.UUID, slotID string) ([]uuid.UUID, error)
}

// AvailabilityChecker answers availability from the slot flag and the bookings
// independently, so a reservation left behind by a failed compensation shows
// up as a mismatch instead of a free slot.
type AvailabilityChecker struct {
	store AvailabilityReadStore
}

func NewAvailabilityChecker(store AvailabilityReadStore) *AvailabilityChecker {
	return &AvailabilityChecker{store: store}
}

func (c *AvailabilityChecker) Check(ctx context.Context, turfID uuid.UUID, slotID string) (*AvailabilitySnapshot, error) {
	if turfID == uuid.Nil || slotID == "" {
		return nil, errs.Mark(errs.New("turf id and slot id are required"), errs.ErrValidation)
	}

	slot, err := c.store.FindSlot(ctx, turfID, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrProvider)
	}

	holding, err := c.store.HoldingBookingIDs(ctx, turfID, slotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProvider)
	}

	free := len(holding) == 0
	snapshot := &AvailabilitySnapshot{
		TurfID:          turfID,
		SlotID:          slotID,
		Start:           slot.Start,
		End:             slot.End,
		Price:           slot.Price,
		SlotAvailable:   slot.Available,
		HoldingBookings: holding,
		Available:       slot.Available && free,
		Consistent:      slot.Available == free,
	}

	if !snapshot.Consistent {
		ids := make([]string, len(holding))
		for i, id := range holding {
			ids[i] = id.String()
		}
		slog.ErrorContext(ctx, "slot availability disagrees with bookings",
			"turf_id", turfID.String(),
			"slot_id", slotID,
			"slot_available", slot.Available,
			"holding_bookings", ids)
	}

	return snapshot, nil
}
