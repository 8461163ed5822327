package repository

import (
	"context"

	"turf-booking/internal/domain/profile"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/infra/repository/converter"
	"turf-booking/internal/pkg/pgconv"
)

type ProfileQueries interface {
	UpsertProfile(ctx context.Context, db pgsql.DBTX, arg pgsql.UpsertProfileParams) (pgsql.Profiles, bool, error)
	GetProfileByExternalID(ctx context.Context, db pgsql.DBTX, externalID string) (pgsql.Profiles, error)
}

type ProfileRepository struct {
	queries ProfileQueries
	db      pgsql.DBTX
}

func NewProfileRepository(queries ProfileQueries, db pgsql.DBTX) *ProfileRepository {
	return &ProfileRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileRepository) Upsert(ctx context.Context, p *profile.Profile) (*profile.Profile, bool, error) {
	row, inserted, err := r.queries.UpsertProfile(ctx, r.db, pgsql.UpsertProfileParams{
		ID:         p.ID(),
		ExternalID: p.ExternalID(),
		Role:       p.Role().String(),
		Name:       p.Name(),
		Email:      p.Email(),
		Phone:      p.Phone(),
		Now:        pgconv.TimeToPgtype(p.LastActive()),
	})
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to upsert profile", err)
	}

	stored, err := converter.ProfileFromInfra(row)
	if err != nil {
		return nil, false, infra.WrapRepoErr("stored profile is invalid", err)
	}
	return stored, inserted, nil
}

func (r *ProfileRepository) FindByExternalID(ctx context.Context, externalID string) (*profile.Profile, error) {
	row, err := r.queries.GetProfileByExternalID(ctx, r.db, externalID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile", err)
	}

	p, err := converter.ProfileFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored profile is invalid", err)
	}
	return p, nil
}
