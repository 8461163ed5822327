package request

import (
	"turf-booking/internal/domain/profile"
	"turf-booking/internal/usecase/commands"
)

type RegisterProfileRequest struct {
	Role  string `json:"role" binding:"omitempty,oneof=player owner"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
}

// ToInput falls back to the role claimed in the token, then to player.
func (r RegisterProfileRequest) ToInput(identity profile.Identity) commands.RegisterProfileInput {
	role := r.Role
	if role == "" {
		role = identity.Role
	}
	if role == "" {
		role = profile.RolePlayer.String()
	}
	return commands.RegisterProfileInput{
		Identity: identity,
		Role:     role,
		Phone:    r.Phone,
	}
}
