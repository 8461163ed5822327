package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const profileColumns = `id, external_id, role, name, email, phone, created_at, last_active`

func scanProfile(row pgx.Row, extra ...any) (Profiles, error) {
	var i Profiles
	dest := []any{
		&i.ID,
		&i.ExternalID,
		&i.Role,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.CreatedAt,
		&i.LastActive,
	}
	err := row.Scan(append(dest, extra...)...)
	return i, err
}

// An existing row keeps its id and role; blank contact fields are filled in.
// xmax = 0 only for freshly inserted tuples.
const upsertProfile = `
INSERT INTO profiles (id, external_id, role, name, email, phone, created_at, last_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (external_id) DO UPDATE SET
	last_active = EXCLUDED.last_active,
	name  = CASE WHEN profiles.name  = '' THEN EXCLUDED.name  ELSE profiles.name  END,
	email = CASE WHEN profiles.email = '' THEN EXCLUDED.email ELSE profiles.email END,
	phone = CASE WHEN profiles.phone = '' THEN EXCLUDED.phone ELSE profiles.phone END
RETURNING ` + profileColumns + `, (xmax = 0) AS inserted
`

type UpsertProfileParams struct {
	ID         uuid.UUID
	ExternalID string
	Role       string
	Name       string
	Email      string
	Phone      string
	Now        pgtype.Timestamptz
}

func (q *Queries) UpsertProfile(ctx context.Context, db DBTX, arg UpsertProfileParams) (Profiles, bool, error) {
	var inserted bool
	row := db.QueryRow(ctx, upsertProfile, arg.ID, arg.ExternalID, arg.Role, arg.Name, arg.Email, arg.Phone, arg.Now)
	p, err := scanProfile(row, &inserted)
	return p, inserted, err
}

const getProfileByExternalID = `SELECT ` + profileColumns + ` FROM profiles WHERE external_id = $1`

func (q *Queries) GetProfileByExternalID(ctx context.Context, db DBTX, externalID string) (Profiles, error) {
	return scanProfile(db.QueryRow(ctx, getProfileByExternalID, externalID))
}
