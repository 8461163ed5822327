//go:build unit || e2e

package builder

import (
	"time"

	"turf-booking/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileBuilder struct {
	ID         uuid.UUID
	ExternalID string
	Role       profile.Role
	Name       string
	Email      string
	Phone      string
	CreatedAt  time.Time
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		ID:         uuid.New(),
		ExternalID: "ext-" + uuid.NewString(),
		Role:       profile.RolePlayer,
		Name:       "Test Player",
		Email:      "player@example.com",
		CreatedAt:  time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (p *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(p)
	return p
}

func (p *ProfileBuilder) AsOwner() *ProfileBuilder {
	p.Role = profile.RoleOwner
	p.Name = "Test Owner"
	p.Email = "owner@example.com"
	return p
}

func (p *ProfileBuilder) BuildDomain() *profile.Profile {
	return profile.ReconstructProfile(p.ID, p.ExternalID, p.Role, p.Name, p.Email, p.Phone, p.CreatedAt, p.CreatedAt)
}

func (p *ProfileBuilder) BuildIdentity() profile.Identity {
	return profile.Identity{
		ExternalID: p.ExternalID,
		Email:      p.Email,
		Name:       p.Name,
		Role:       p.Role.String(),
	}
}
