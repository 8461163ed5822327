package booking

import (
	"fmt"

	"turf-booking/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// HoldsSlot reports whether a booking in this status keeps its slot claimed.
// Completed bookings keep the slot; only cancellation gives it back.
func (s Status) HoldsSlot() bool {
	return s != StatusCancelled
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

// HoldingStatuses are the statuses counted against a slot.
func HoldingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted}
}

// Effect is what the store must do to the slot after a transition commits.
type Effect int

const (
	EffectNone Effect = iota
	EffectReleaseSlot
)

func (e Effect) String() string {
	switch e {
	case EffectReleaseSlot:
		return "release_slot"
	default:
		return "none"
	}
}

var transitions = map[Status]map[Status]Effect{
	StatusPending: {
		StatusConfirmed: EffectNone,
		StatusCancelled: EffectReleaseSlot,
	},
	StatusConfirmed: {
		StatusCancelled: EffectReleaseSlot,
		StatusCompleted: EffectNone,
	},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CheckTransition returns the side effect of moving from one status to another,
// or a *TransitionError when the edge does not exist.
func CheckTransition(from, to Status) (Effect, error) {
	edges, ok := transitions[from]
	if !ok {
		return EffectNone, &TransitionError{From: from, To: to}
	}
	effect, ok := edges[to]
	if !ok {
		return EffectNone, &TransitionError{From: from, To: to}
	}
	return effect, nil
}

// AllowedFrom lists the statuses reachable in one step.
func AllowedFrom(from Status) []Status {
	out := make([]Status, 0, 2)
	for _, to := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if _, ok := transitions[from][to]; ok {
			out = append(out, to)
		}
	}
	return out
}

type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return errs.ErrInvalidTransition
}
