package response

import (
	"time"

	"turf-booking/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"externalId"`
	Role       string    `json:"role"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
}

func FromProfile(p *profile.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:         p.ID(),
		ExternalID: p.ExternalID(),
		Role:       p.Role().String(),
		Name:       p.Name(),
		Email:      p.Email(),
		Phone:      p.Phone(),
		CreatedAt:  p.CreatedAt(),
		LastActive: p.LastActive(),
	}
}
