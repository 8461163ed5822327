package profile

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Identity is what the external identity provider vouches for.
type Identity struct {
	ExternalID string
	Email      string
	Name       string
	Role       string
}

// Profile is created lazily on first use and never deleted.
type Profile struct {
	id         uuid.UUID
	externalID string
	role       Role
	name       string
	email      string
	phone      string
	createdAt  time.Time
	lastActive time.Time
}

func NewProfile(identity Identity, role Role, phone string, now time.Time) (*Profile, error) {
	if identity.ExternalID == "" {
		return nil, ErrEmptyExternalID
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if utf8.RuneCountInString(identity.Name) > 100 {
		return nil, ErrNameTooLong
	}
	if len(phone) > 32 {
		return nil, ErrPhoneTooLong
	}

	return &Profile{
		id:         uuid.New(),
		externalID: identity.ExternalID,
		role:       role,
		name:       identity.Name,
		email:      identity.Email,
		phone:      phone,
		createdAt:  now,
		lastActive: now,
	}, nil
}

func ReconstructProfile(
	id uuid.UUID,
	externalID string,
	role Role,
	name, email, phone string,
	createdAt, lastActive time.Time,
) *Profile {
	return &Profile{
		id:         id,
		externalID: externalID,
		role:       role,
		name:       name,
		email:      email,
		phone:      phone,
		createdAt:  createdAt,
		lastActive: lastActive,
	}
}

func (p *Profile) IsOwner() bool { return p.role == RoleOwner }

func (p *Profile) ID() uuid.UUID         { return p.id }
func (p *Profile) ExternalID() string    { return p.externalID }
func (p *Profile) Role() Role            { return p.role }
func (p *Profile) Name() string          { return p.name }
func (p *Profile) Email() string         { return p.email }
func (p *Profile) Phone() string         { return p.phone }
func (p *Profile) CreatedAt() time.Time  { return p.createdAt }
func (p *Profile) LastActive() time.Time { return p.lastActive }
