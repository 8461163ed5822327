package commands

import (
	"context"
	"log/slog"

	"turf-booking/internal/domain/profile"
	"turf-booking/internal/infra"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"
)

type ProfileCommands interface {
	ResolveOrCreate(ctx context.Context, identity profile.Identity, defaultRole profile.Role) (*profile.Profile, error)
	Register(ctx context.Context, in RegisterProfileInput) (*profile.Profile, bool, error)
	Lookup(ctx context.Context, externalID string) (*profile.Profile, error)
}

type RegisterProfileInput struct {
	Identity profile.Identity
	Role     string
	Phone    string
}

// ProfileResolver maps a verified external identity to the internal profile,
// creating it on first sight. Upserts make concurrent first requests safe.
type ProfileResolver struct {
	profiles shared.ProfileRepository
	clock    clock.Clock
}

func NewProfileResolver(profiles shared.ProfileRepository, clk clock.Clock) *ProfileResolver {
	return &ProfileResolver{profiles: profiles, clock: clk}
}

func (r *ProfileResolver) ResolveOrCreate(ctx context.Context, identity profile.Identity, defaultRole profile.Role) (*profile.Profile, error) {
	p, _, err := r.upsert(ctx, identity, defaultRole, "")
	return p, err
}

// Register is idempotent. An existing profile keeps its role; the bool reports
// whether a new profile was created.
func (r *ProfileResolver) Register(ctx context.Context, in RegisterProfileInput) (*profile.Profile, bool, error) {
	role, err := profile.NewRole(in.Role)
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrValidation)
	}
	return r.upsert(ctx, in.Identity, role, in.Phone)
}

func (r *ProfileResolver) Lookup(ctx context.Context, externalID string) (*profile.Profile, error) {
	p, err := r.profiles.FindByExternalID(ctx, externalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrProvider)
	}
	return p, nil
}

func (r *ProfileResolver) upsert(ctx context.Context, identity profile.Identity, role profile.Role, phone string) (*profile.Profile, bool, error) {
	candidate, err := profile.NewProfile(identity, role, phone, r.clock.Now())
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrValidation)
	}

	stored, created, err := r.profiles.Upsert(ctx, candidate)
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrProvider)
	}
	if created {
		slog.InfoContext(ctx, "profile created",
			"profile_id", stored.ID().String(),
			"role", stored.Role().String())
	}
	return stored, created, nil
}
