package request

import (
	"strings"
	"time"

	"turf-booking/internal/domain/profile"
	"turf-booking/internal/usecase/commands"
	"turf-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotRequest struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type CreateBookingRequest struct {
	TurfID uuid.UUID   `json:"turfId" binding:"required"`
	SlotID string      `json:"slotId" binding:"required,max=64"`
	Slot   SlotRequest `json:"slot" binding:"required"`
	Amount *int64      `json:"amount" binding:"required,min=0"`
	QRUsed bool        `json:"qrUsed"`
}

func (r CreateBookingRequest) ToInput(identity profile.Identity) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		TurfID:   r.TurfID,
		SlotID:   strings.TrimSpace(r.SlotID),
		Date:     strings.TrimSpace(r.Slot.Date),
		Start:    strings.TrimSpace(r.Slot.Start),
		End:      strings.TrimSpace(r.Slot.End),
		Identity: identity,
		Amount:   *r.Amount,
		QRUsed:   r.QRUsed,
	}
}

type CheckAvailabilityRequest struct {
	TurfID uuid.UUID `json:"turfId" binding:"required"`
	SlotID string    `json:"slotId" binding:"required,max=64"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type OwnerBookingsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Since  string `form:"since"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// ToFilter accepts since as RFC 3339 or as a bare YYYY-MM-DD date.
func (q OwnerBookingsQuery) ToFilter() (queries.OwnerBookingFilter, error) {
	filter := queries.OwnerBookingFilter{Limit: q.Limit}
	if q.Status != "" {
		status := q.Status
		filter.Status = &status
	}
	if q.Since != "" {
		since, err := time.Parse(time.RFC3339, q.Since)
		if err != nil {
			since, err = time.Parse(time.DateOnly, q.Since)
			if err != nil {
				return queries.OwnerBookingFilter{}, err
			}
		}
		filter.Since = &since
	}
	return filter, nil
}

type ListBookingsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
