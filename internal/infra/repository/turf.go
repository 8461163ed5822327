package repository

import (
	"context"

	"turf-booking/internal/domain/turf"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/infra/repository/converter"
	"turf-booking/internal/pkg/pgconv"
)

type TurfQueries interface {
	CreateTurf(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateTurfParams) error
	CreateTurfSlots(ctx context.Context, db pgsql.DBTX, args []pgsql.CreateTurfSlotParams) error
}

type TurfRepository struct {
	queries TurfQueries
	db      pgsql.DBTX
}

func NewTurfRepository(queries TurfQueries, db pgsql.DBTX) *TurfRepository {
	return &TurfRepository{
		queries: queries,
		db:      db,
	}
}

// Create writes the turf and its slots; run it inside a unit of work.
func (r *TurfRepository) Create(ctx context.Context, t *turf.Turf, slots []*turf.Slot) error {
	err := r.queries.CreateTurf(ctx, r.db, pgsql.CreateTurfParams{
		ID:           t.ID(),
		OwnerID:      t.OwnerID(),
		Name:         t.Name(),
		Address:      t.Address(),
		PricePerHour: t.PricePerHour(),
		CreatedAt:    pgconv.TimeToPgtype(t.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create turf", err)
	}

	params := make([]pgsql.CreateTurfSlotParams, len(slots))
	for i, s := range slots {
		params[i] = converter.SlotToInfra(s)
	}
	if err := r.queries.CreateTurfSlots(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create turf slots", err)
	}
	return nil
}
