package repository

import (
	"context"

	"turf-booking/internal/domain/turf"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/infra/repository/converter"
	"turf-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotQueries interface {
	ClaimTurfSlot(ctx context.Context, db pgsql.DBTX, turfID uuid.UUID, slotID string) (int64, error)
	ReleaseTurfSlot(ctx context.Context, db pgsql.DBTX, turfID uuid.UUID, slotID string) (int64, error)
	GetTurfSlot(ctx context.Context, db pgsql.DBTX, turfID uuid.UUID, slotID string) (pgsql.TurfSlots, error)
	GetTurfOwner(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (uuid.UUID, error)
}

// SlotRepository runs every statement on its own; a claim is never part of a
// wider transaction.
type SlotRepository struct {
	queries SlotQueries
	db      pgsql.DBTX
}

func NewSlotRepository(queries SlotQueries, db pgsql.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) Claim(ctx context.Context, turfID uuid.UUID, slotID string) (bool, error) {
	n, err := r.queries.ClaimTurfSlot(ctx, r.db, turfID, slotID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim slot", err)
	}
	return n == 1, nil
}

func (r *SlotRepository) Release(ctx context.Context, turfID uuid.UUID, slotID string) (bool, error) {
	n, err := r.queries.ReleaseTurfSlot(ctx, r.db, turfID, slotID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to release slot", err)
	}
	return n > 0, nil
}

func (r *SlotRepository) FindSlot(ctx context.Context, turfID uuid.UUID, slotID string) (*turf.Slot, error) {
	row, err := r.queries.GetTurfSlot(ctx, r.db, turfID, slotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot", err)
	}

	slot, err := converter.SlotFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored slot is invalid", err)
	}
	return slot, nil
}

func (r *SlotRepository) TurfOwner(ctx context.Context, turfID uuid.UUID) (uuid.UUID, error) {
	ownerID, err := r.queries.GetTurfOwner(ctx, r.db, turfID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("turf not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find turf owner", err)
	}
	return ownerID, nil
}
