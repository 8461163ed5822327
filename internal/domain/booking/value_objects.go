package booking

import (
	"errors"
	"time"

	"turf-booking/internal/domain/turf"
)

var (
	ErrInvalidSlotDate = errors.New("slot date must be YYYY-MM-DD")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrUnknownStatus   = errors.New("unknown booking status")
)

const DateLayout = "2006-01-02"

// SlotSnapshot freezes the date and window the player booked, independent of
// later catalog edits.
type SlotSnapshot struct {
	date   time.Time
	window turf.Range
}

func NewSlotSnapshot(date, start, end string) (SlotSnapshot, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil || len(date) != len(DateLayout) {
		return SlotSnapshot{}, ErrInvalidSlotDate
	}
	window, err := turf.ParseRange(start, end)
	if err != nil {
		return SlotSnapshot{}, err
	}
	return SlotSnapshot{date: d, window: window}, nil
}

func (s SlotSnapshot) Date() time.Time    { return s.date }
func (s SlotSnapshot) DateString() string { return s.date.Format(DateLayout) }
func (s SlotSnapshot) Start() string      { return s.window.Start().String() }
func (s SlotSnapshot) End() string        { return s.window.End().String() }
func (s SlotSnapshot) Window() turf.Range { return s.window }

// Amount is in minor currency units.
type Amount struct {
	value int64
}

func NewAmount(v int64) (Amount, error) {
	if v < 0 {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{value: v}, nil
}

func (a Amount) Int64() int64 {
	return a.value
}
