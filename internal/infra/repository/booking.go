package repository

import (
	"context"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/infra/repository/converter"
	"turf-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingQueries interface {
	InsertBooking(ctx context.Context, db pgsql.DBTX, arg pgsql.Bookings) error
	GetBookingByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateBookingStatusParams) (int64, error)
	ListStalePendingBookings(ctx context.Context, db pgsql.DBTX, before pgtype.Timestamptz, limit int32) ([]pgsql.Bookings, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      pgsql.DBTX
}

func NewBookingRepository(queries BookingQueries, db pgsql.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.InsertBooking(ctx, r.db, converter.BookingToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return toDomainBooking(row)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (bool, error) {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, pgsql.UpdateBookingStatusParams{
		ID:        id,
		From:      from.String(),
		To:        to.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return n == 1, nil
}

func (r *BookingRepository) ListStalePending(ctx context.Context, createdBefore time.Time, limit int) ([]*booking.Booking, error) {
	// #nosec G115 -- limit comes from config and is small
	rows, err := r.queries.ListStalePendingBookings(ctx, r.db, pgconv.TimeToPgtype(createdBefore), int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending bookings", err)
	}
	return toDomainBookings(rows)
}

func toDomainBooking(row pgsql.Bookings) (*booking.Booking, error) {
	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is invalid", err)
	}
	return b, nil
}

func toDomainBookings(rows []pgsql.Bookings) ([]*booking.Booking, error) {
	result := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toDomainBooking(row)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}
