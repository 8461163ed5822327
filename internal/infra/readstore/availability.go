package readstore

import (
	"context"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/pkg/pgconv"
	"turf-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	GetTurfSlot(ctx context.Context, db pgsql.DBTX, turfID uuid.UUID, slotID string) (pgsql.TurfSlots, error)
	ListBookingsByTurfSlot(ctx context.Context, db pgsql.DBTX, turfID uuid.UUID, slotID string, statuses []string) ([]pgsql.Bookings, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityQueries
	db      pgsql.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityQueries, db pgsql.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) FindSlot(ctx context.Context, turfID uuid.UUID, slotID string) (*queries.SlotView, error) {
	row, err := r.queries.GetTurfSlot(ctx, r.db, turfID, slotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot", err)
	}

	return &queries.SlotView{
		TurfID:    row.TurfID,
		SlotID:    row.SlotID,
		Start:     row.StartTime,
		End:       row.EndTime,
		Price:     row.Price,
		Available: row.Available,
	}, nil
}

func (r *AvailabilityReadStore) HoldingBookingIDs(ctx context.Context, turfID uuid.UUID, slotID string) ([]uuid.UUID, error) {
	holding := booking.HoldingStatuses()
	statuses := make([]string, len(holding))
	for i, s := range holding {
		statuses[i] = s.String()
	}

	rows, err := r.queries.ListBookingsByTurfSlot(ctx, r.db, turfID, slotID, statuses)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list holding bookings", err)
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids, nil
}
