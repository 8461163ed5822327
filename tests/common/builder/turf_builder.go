//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"turf-booking/internal/domain/turf"

	"github.com/google/uuid"
)

type TurfBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Address      string
	PricePerHour int64
	OpenHour     int
	CloseHour    int
}

func NewTurfBuilder() *TurfBuilder {
	return &TurfBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Name:         "Green Field Arena",
		Address:      "12 Stadium Road",
		PricePerHour: 1200,
		OpenHour:     6,
		CloseHour:    23,
	}
}

func (t *TurfBuilder) With(mutate func(*TurfBuilder)) *TurfBuilder {
	mutate(t)
	return t
}

func (t *TurfBuilder) BuildDomain() *turf.Turf {
	return turf.ReconstructTurf(t.ID, t.OwnerID, t.Name, t.Address, t.PricePerHour, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

// BuildSlots lays out hourly slots named slot-HH.
func (t *TurfBuilder) BuildSlots() []*turf.Slot {
	hour := t.OpenHour
	slots, err := turf.HourlySlots(t.ID, t.OpenHour, t.CloseHour, t.PricePerHour, func() string {
		id := SlotID(hour)
		hour++
		return id
	})
	if err != nil {
		panic(err)
	}
	return slots
}

func SlotID(hour int) string {
	return fmt.Sprintf("slot-%02d", hour)
}
