package turf

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM")
	ErrInvalidSlotRange = errors.New("slot start must be before end")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrEmptySlotID      = errors.New("slot id is required")
	ErrInvalidHours     = errors.New("opening hours must satisfy 0 <= open < close <= 24")
)

const timeOfDayLayout = "15:04"

// TimeOfDay is minutes since midnight. 24:00 is allowed as a closing time.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == "24:00" {
		return TimeOfDay{minutes: 24 * 60}, nil
	}
	if len(s) != len(timeOfDayLayout) {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func TimeOfDayAt(hour, minute int) TimeOfDay {
	return TimeOfDay{minutes: hour*60 + minute}
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }
func (t TimeOfDay) Minutes() int                { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Range is a half-open [start, end) window within one day.
type Range struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewRange(start, end TimeOfDay) (Range, error) {
	if !start.Before(end) {
		return Range{}, ErrInvalidSlotRange
	}
	return Range{start: start, end: end}, nil
}

func ParseRange(start, end string) (Range, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Range{}, err
	}
	return NewRange(s, e)
}

func (r Range) Start() TimeOfDay { return r.start }
func (r Range) End() TimeOfDay   { return r.end }

func (r Range) Duration() time.Duration {
	return time.Duration(r.end.minutes-r.start.minutes) * time.Minute
}
