package queries

import (
	"context"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/infra"
	"turf-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type BookingQueries interface {
	GetByID(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) (*BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, filter OwnerBookingFilter) ([]*BookingView, error)
	ListForPlayer(ctx context.Context, playerID uuid.UUID, limit int) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter OwnerBookingFilter) ([]*BookingView, error)
	ListByPlayer(ctx context.Context, playerID uuid.UUID, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetByID returns the booking only to its player or its owner.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrProvider)
	}

	if view.PlayerID != viewerID && view.OwnerID != viewerID {
		return nil, errs.Wrapf(errs.ErrAccessDenied, "booking %s is not visible to %s", id, viewerID)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, filter OwnerBookingFilter) ([]*BookingView, error) {
	if filter.Status != nil {
		if _, err := booking.ParseStatus(*filter.Status); err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
	}
	filter.Limit = normalizeLimit(filter.Limit)

	views, err := q.store.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProvider)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListForPlayer(ctx context.Context, playerID uuid.UUID, limit int) ([]*BookingView, error) {
	views, err := q.store.ListByPlayer(ctx, playerID, normalizeLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProvider)
	}
	return views, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
