//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/config"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/commands"
	"turf-booking/internal/usecase/shared"
	"turf-booking/tests/common/builder"
	"turf-booking/tests/common/memstore"
	"turf-booking/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingStatusTestSuite struct {
	suite.Suite
	store   *memstore.Store
	clock   *clock.MockClock
	turf    *builder.TurfBuilder
	machine *commands.BookingStatusMachine
}

func (s *BookingStatusTestSuite) SetupTest() {
	s.store = memstore.New()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	s.turf = builder.NewTurfBuilder()
	s.store.AddTurf(s.turf.BuildDomain(), s.turf.BuildSlots()...)

	cfg := config.NewTestConfig()
	cfg.Booking.PendingTTL = 30 * time.Minute
	cfg.Booking.ExpiryBatchSize = 10
	s.machine = commands.NewBookingStatusMachine(
		commands.NewSlotReservationManager(s.store.Slots()),
		s.store.UoW(),
		s.clock,
		cfg,
	)
}

func TestBookingStatusSuite(t *testing.T) {
	suite.Run(t, new(BookingStatusTestSuite))
}

// holdingBooking stores a booking in status st whose slot is claimed unless st is cancelled.
func (s *BookingStatusTestSuite) holdingBooking(hour int, st booking.Status) *booking.Booking {
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.TurfID = s.turf.ID
		b.OwnerID = s.turf.OwnerID
		b.SlotID = builder.SlotID(hour)
		b.CreatedAt = s.clock.Now()
		b.UpdatedAt = s.clock.Now()
	}).WithStatus(st).BuildDomain()
	s.store.AddBooking(b)
	if st.HoldsSlot() {
		claimed, err := s.store.Slots().Claim(context.Background(), s.turf.ID, b.SlotID())
		s.Require().NoError(err)
		s.Require().True(claimed)
	}
	return b
}

func (s *BookingStatusTestSuite) TestTransition() {
	type edge struct {
		from    booking.Status
		to      booking.Status
		allowed bool
		frees   bool
	}
	edges := []edge{
		{from: booking.StatusPending, to: booking.StatusConfirmed, allowed: true},
		{from: booking.StatusPending, to: booking.StatusCancelled, allowed: true, frees: true},
		{from: booking.StatusConfirmed, to: booking.StatusCompleted, allowed: true},
		{from: booking.StatusConfirmed, to: booking.StatusCancelled, allowed: true, frees: true},
		{from: booking.StatusPending, to: booking.StatusCompleted},
		{from: booking.StatusPending, to: booking.StatusPending},
		{from: booking.StatusConfirmed, to: booking.StatusPending},
		{from: booking.StatusCompleted, to: booking.StatusCancelled},
		{from: booking.StatusCompleted, to: booking.StatusPending},
		{from: booking.StatusCancelled, to: booking.StatusConfirmed},
		{from: booking.StatusCancelled, to: booking.StatusPending},
	}

	for _, e := range edges {
		s.Run(e.from.String()+" to "+e.to.String(), func() {
			s.SetupTest()
			b := s.holdingBooking(18, e.from)
			slotFreeBefore := s.store.SlotAvailable(s.turf.ID, b.SlotID())

			got, err := s.machine.Transition(context.Background(), b.ID(), e.to, s.turf.OwnerID)
			stored, _ := s.store.Booking(b.ID())

			if !e.allowed {
				s.True(errs.Is(err, errs.ErrInvalidTransition), "got %v", err)
				var te *booking.TransitionError
				s.Require().True(errs.As(err, &te))
				s.Equal(e.from, te.From)
				s.Equal(e.to, te.To)
				s.Equal(e.from, stored.Status())
				s.Equal(slotFreeBefore, s.store.SlotAvailable(s.turf.ID, b.SlotID()))
				s.Empty(s.store.OutboxEvents())
				return
			}

			s.Require().NoError(err)
			s.Equal(e.to, got.Status())
			s.Equal(e.to, stored.Status())
			s.Equal(e.frees, s.store.SlotAvailable(s.turf.ID, b.SlotID()))

			events := s.store.OutboxEvents()
			s.Require().Len(events, 1)
			s.Equal(shared.StatusEventType(e.to), events[0].Type)
		})
	}

	s.Run("error: non-owner is denied and nothing changes", func() {
		s.SetupTest()
		b := s.holdingBooking(18, booking.StatusPending)

		_, err := s.machine.Transition(context.Background(), b.ID(), booking.StatusConfirmed, uuid.New())
		s.True(errs.Is(err, errs.ErrAccessDenied), "got %v", err)
		stored, _ := s.store.Booking(b.ID())
		s.Equal(booking.StatusPending, stored.Status())
	})

	s.Run("error: unknown booking is not found", func() {
		s.SetupTest()
		_, err := s.machine.Transition(context.Background(), uuid.New(), booking.StatusConfirmed, s.turf.OwnerID)
		s.True(errs.Is(err, errs.ErrNotFound), "got %v", err)
	})

	s.Run("error: unknown status is a validation error", func() {
		s.SetupTest()
		b := s.holdingBooking(18, booking.StatusPending)
		_, err := s.machine.Transition(context.Background(), b.ID(), booking.Status("archived"), s.turf.OwnerID)
		s.True(errs.Is(err, errs.ErrValidation), "got %v", err)
	})

	s.Run("error: store failure is a provider error", func() {
		s.SetupTest()
		b := s.holdingBooking(18, booking.StatusPending)
		s.store.UpdateStatusErr = errors.New("connection reset")

		_, err := s.machine.Transition(context.Background(), b.ID(), booking.StatusConfirmed, s.turf.OwnerID)
		s.True(errs.Is(err, errs.ErrProvider), "got %v", err)
		stored, _ := s.store.Booking(b.ID())
		s.Equal(booking.StatusPending, stored.Status())
	})

	s.Run("success: cancel commits even when the slot release fails", func() {
		s.SetupTest()
		logs := testutil.CaptureLogs(s.T())
		b := s.holdingBooking(18, booking.StatusConfirmed)
		s.store.ReleaseErr = errors.New("connection refused")

		got, err := s.machine.Transition(context.Background(), b.ID(), booking.StatusCancelled, s.turf.OwnerID)
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, got.Status())
		s.False(s.store.SlotAvailable(s.turf.ID, b.SlotID()))
		s.Contains(logs.String(), "failed to release slot after cancellation")
	})

	s.Run("cancelled slot can be booked again", func() {
		s.SetupTest()
		b := s.holdingBooking(18, booking.StatusPending)
		_, err := s.machine.Transition(context.Background(), b.ID(), booking.StatusCancelled, s.turf.OwnerID)
		s.Require().NoError(err)

		lifecycle := commands.NewBookingLifecycle(
			commands.NewSlotReservationManager(s.store.Slots()),
			commands.NewProfileResolver(s.store.Profiles(), s.clock),
			s.store.Slots(),
			s.store.UoW(),
			s.clock,
		)
		next, err := lifecycle.Create(context.Background(), commands.CreateBookingInput{
			TurfID:   s.turf.ID,
			SlotID:   b.SlotID(),
			Date:     "2026-03-21",
			Start:    "18:00",
			End:      "19:00",
			Identity: builder.NewProfileBuilder().BuildIdentity(),
			Amount:   1200,
		})
		s.Require().NoError(err)
		s.NotEqual(b.ID(), next.ID())
		s.Equal(1, s.store.HoldingCount(s.turf.ID, b.SlotID()))
	})
}

func (s *BookingStatusTestSuite) TestTransition_ConcurrentChange() {
	s.Run("lost race is judged against the winning status", func() {
		s.SetupTest()
		b := s.holdingBooking(18, booking.StatusPending)

		raced := false
		s.store.BeforeUpdateStatus = func(id uuid.UUID) {
			if !raced {
				raced = true
				s.store.ForceStatus(id, booking.StatusCancelled)
			}
		}

		_, err := s.machine.Transition(context.Background(), b.ID(), booking.StatusConfirmed, s.turf.OwnerID)
		s.True(errs.Is(err, errs.ErrInvalidTransition), "got %v", err)
		stored, _ := s.store.Booking(b.ID())
		s.Equal(booking.StatusCancelled, stored.Status())
		s.Empty(s.store.OutboxEvents())
	})

	s.Run("lost race to a compatible status retries and succeeds", func() {
		s.SetupTest()
		b := s.holdingBooking(18, booking.StatusPending)

		raced := false
		s.store.BeforeUpdateStatus = func(id uuid.UUID) {
			if !raced {
				raced = true
				s.store.ForceStatus(id, booking.StatusConfirmed)
			}
		}

		got, err := s.machine.Transition(context.Background(), b.ID(), booking.StatusCancelled, s.turf.OwnerID)
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, got.Status())
		s.True(s.store.SlotAvailable(s.turf.ID, b.SlotID()))

		events := s.store.OutboxEvents()
		s.Require().Len(events, 1)
		s.Contains(string(events[0].Payload), `"from":"confirmed"`)
	})
}

func (s *BookingStatusTestSuite) TestExpireStale() {
	s.Run("cancels only pending bookings older than the ttl", func() {
		s.SetupTest()
		stale := s.holdingBooking(8, booking.StatusPending)
		confirmed := s.holdingBooking(9, booking.StatusConfirmed)
		s.clock.Add(45 * time.Minute)
		fresh := s.holdingBooking(10, booking.StatusPending)

		n, err := s.machine.ExpireStale(context.Background())
		s.Require().NoError(err)
		s.Equal(1, n)

		got, _ := s.store.Booking(stale.ID())
		s.Equal(booking.StatusCancelled, got.Status())
		s.True(s.store.SlotAvailable(s.turf.ID, stale.SlotID()))

		got, _ = s.store.Booking(confirmed.ID())
		s.Equal(booking.StatusConfirmed, got.Status())
		got, _ = s.store.Booking(fresh.ID())
		s.Equal(booking.StatusPending, got.Status())
		s.False(s.store.SlotAvailable(s.turf.ID, fresh.SlotID()))
	})

	s.Run("booking confirmed meanwhile is skipped", func() {
		s.SetupTest()
		b := s.holdingBooking(8, booking.StatusPending)
		s.clock.Add(time.Hour)
		s.store.BeforeUpdateStatus = func(id uuid.UUID) {
			s.store.ForceStatus(id, booking.StatusConfirmed)
		}

		n, err := s.machine.ExpireStale(context.Background())
		s.Require().NoError(err)
		s.Equal(0, n)
		got, _ := s.store.Booking(b.ID())
		s.Equal(booking.StatusConfirmed, got.Status())
		s.False(s.store.SlotAvailable(s.turf.ID, b.SlotID()))
	})

	s.Run("disabled without a ttl", func() {
		s.SetupTest()
		cfg := config.NewTestConfig()
		cfg.Booking.PendingTTL = 0
		machine := commands.NewBookingStatusMachine(commands.NewSlotReservationManager(s.store.Slots()), s.store.UoW(), s.clock, cfg)
		s.holdingBooking(8, booking.StatusPending)
		s.clock.Add(24 * time.Hour)

		n, err := machine.ExpireStale(context.Background())
		s.Require().NoError(err)
		s.Equal(0, n)
	})
}
