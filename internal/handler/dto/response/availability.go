package response

import (
	"turf-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailableSlotResponse struct {
	SlotID    string `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	TurfID    uuid.UUID              `json:"turfId"`
	Available bool                   `json:"available"`
	Slot      *AvailableSlotResponse `json:"slot"`
}

func FromAvailability(s *queries.AvailabilitySnapshot) *AvailabilityResponse {
	return &AvailabilityResponse{
		TurfID:    s.TurfID,
		Available: s.Available,
		Slot: &AvailableSlotResponse{
			SlotID:    s.SlotID,
			StartTime: s.Start,
			EndTime:   s.End,
			Price:     s.Price,
			Available: s.Available,
		},
	}
}
