package turf

import (
	"time"

	"github.com/google/uuid"
)

// Turf carries catalog fields that this service only reads.
type Turf struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	name         string
	address      string
	pricePerHour int64
	createdAt    time.Time
}

func NewTurf(ownerID uuid.UUID, name, address string, pricePerHour int64, now time.Time) (*Turf, error) {
	if pricePerHour < 0 {
		return nil, ErrNegativePrice
	}
	return &Turf{
		id:           uuid.New(),
		ownerID:      ownerID,
		name:         name,
		address:      address,
		pricePerHour: pricePerHour,
		createdAt:    now,
	}, nil
}

func ReconstructTurf(id, ownerID uuid.UUID, name, address string, pricePerHour int64, createdAt time.Time) *Turf {
	return &Turf{
		id:           id,
		ownerID:      ownerID,
		name:         name,
		address:      address,
		pricePerHour: pricePerHour,
		createdAt:    createdAt,
	}
}

func (t *Turf) ID() uuid.UUID        { return t.id }
func (t *Turf) OwnerID() uuid.UUID   { return t.ownerID }
func (t *Turf) Name() string         { return t.name }
func (t *Turf) Address() string      { return t.address }
func (t *Turf) PricePerHour() int64  { return t.pricePerHour }
func (t *Turf) CreatedAt() time.Time { return t.createdAt }

// Slot is a bookable window of a turf. Availability is flipped only by the
// reservation manager through a conditional store write.
type Slot struct {
	turfID    uuid.UUID
	slotID    string
	window    Range
	price     int64
	available bool
}

func NewSlot(turfID uuid.UUID, slotID string, window Range, price int64) (*Slot, error) {
	if slotID == "" {
		return nil, ErrEmptySlotID
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Slot{
		turfID:    turfID,
		slotID:    slotID,
		window:    window,
		price:     price,
		available: true,
	}, nil
}

func ReconstructSlot(turfID uuid.UUID, slotID string, window Range, price int64, available bool) *Slot {
	return &Slot{
		turfID:    turfID,
		slotID:    slotID,
		window:    window,
		price:     price,
		available: available,
	}
}

func (s *Slot) TurfID() uuid.UUID { return s.turfID }
func (s *Slot) SlotID() string    { return s.slotID }
func (s *Slot) Window() Range     { return s.window }
func (s *Slot) Price() int64      { return s.price }
func (s *Slot) Available() bool   { return s.available }

// HourlySlots lays out one-hour slots from openHour to closeHour.
func HourlySlots(turfID uuid.UUID, openHour, closeHour int, price int64, newID func() string) ([]*Slot, error) {
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		return nil, ErrInvalidHours
	}

	slots := make([]*Slot, 0, closeHour-openHour)
	for h := openHour; h < closeHour; h++ {
		window, err := NewRange(TimeOfDayAt(h, 0), TimeOfDayAt(h+1, 0))
		if err != nil {
			return nil, err
		}
		slot, err := NewSlot(turfID, newID(), window, price)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
