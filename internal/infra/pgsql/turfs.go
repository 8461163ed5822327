package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createTurf = `
INSERT INTO turfs (id, owner_id, name, address, price_per_hour, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateTurfParams struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Address      string
	PricePerHour int64
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateTurf(ctx context.Context, db DBTX, arg CreateTurfParams) error {
	_, err := db.Exec(ctx, createTurf, arg.ID, arg.OwnerID, arg.Name, arg.Address, arg.PricePerHour, arg.CreatedAt)
	return err
}

const getTurfOwner = `SELECT owner_id FROM turfs WHERE id = $1`

func (q *Queries) GetTurfOwner(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := db.QueryRow(ctx, getTurfOwner, id).Scan(&ownerID)
	return ownerID, err
}

const createTurfSlot = `
INSERT INTO turf_slots (turf_id, slot_id, start_time, end_time, price, available)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateTurfSlotParams struct {
	TurfID    uuid.UUID
	SlotID    string
	StartTime string
	EndTime   string
	Price     int64
	Available bool
}

// CreateTurfSlots inserts all slots in one round trip.
func (q *Queries) CreateTurfSlots(ctx context.Context, db DBTX, args []CreateTurfSlotParams) error {
	batch := &pgx.Batch{}
	for _, a := range args {
		batch.Queue(createTurfSlot, a.TurfID, a.SlotID, a.StartTime, a.EndTime, a.Price, a.Available)
	}

	br := db.SendBatch(ctx, batch)
	for range args {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return err
		}
	}
	return br.Close()
}

// Single conditional write. Success is decided by the affected row count alone.
const claimTurfSlot = `
UPDATE turf_slots
SET available = false, updated_at = now()
WHERE turf_id = $1 AND slot_id = $2 AND available = true
`

func (q *Queries) ClaimTurfSlot(ctx context.Context, db DBTX, turfID uuid.UUID, slotID string) (int64, error) {
	tag, err := db.Exec(ctx, claimTurfSlot, turfID, slotID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseTurfSlot = `
UPDATE turf_slots
SET available = true, updated_at = now()
WHERE turf_id = $1 AND slot_id = $2
`

func (q *Queries) ReleaseTurfSlot(ctx context.Context, db DBTX, turfID uuid.UUID, slotID string) (int64, error) {
	tag, err := db.Exec(ctx, releaseTurfSlot, turfID, slotID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getTurfSlot = `
SELECT turf_id, slot_id, start_time, end_time, price, available, updated_at
FROM turf_slots
WHERE turf_id = $1 AND slot_id = $2
`

func (q *Queries) GetTurfSlot(ctx context.Context, db DBTX, turfID uuid.UUID, slotID string) (TurfSlots, error) {
	var i TurfSlots
	err := db.QueryRow(ctx, getTurfSlot, turfID, slotID).Scan(
		&i.TurfID,
		&i.SlotID,
		&i.StartTime,
		&i.EndTime,
		&i.Price,
		&i.Available,
		&i.UpdatedAt,
	)
	return i, err
}
