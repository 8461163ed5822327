package profile

import "errors"

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrEmptyExternalID = errors.New("external id is required")
	ErrNameTooLong     = errors.New("name must be at most 100 characters")
	ErrPhoneTooLong    = errors.New("phone must be at most 32 characters")
)

type Role string

const (
	RolePlayer Role = "player"
	RoleOwner  Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePlayer, RoleOwner:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
