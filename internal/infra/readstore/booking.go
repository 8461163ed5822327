package readstore

import (
	"context"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/pkg/pgconv"
	"turf-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingDetail(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.BookingDetailRow, error)
	ListOwnerBookings(ctx context.Context, db pgsql.DBTX, arg pgsql.ListOwnerBookingsParams) ([]pgsql.BookingDetailRow, error)
	ListPlayerBookings(ctx context.Context, db pgsql.DBTX, playerID uuid.UUID, limit int32) ([]pgsql.BookingDetailRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      pgsql.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db pgsql.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rowToBookingView(row), nil
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter queries.OwnerBookingFilter) ([]*queries.BookingView, error) {
	params := pgsql.ListOwnerBookingsParams{
		OwnerID: ownerID,
		Status:  pgconv.StringPtrToPgtype(filter.Status),
		Since:   pgconv.TimePtrToPgtype(filter.Since),
		// #nosec G115 -- bounded by queries.MaxListLimit
		Limit: int32(filter.Limit),
	}

	rows, err := r.queries.ListOwnerBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner bookings", err)
	}
	return rowsToBookingViews(rows), nil
}

func (r *BookingReadStore) ListByPlayer(ctx context.Context, playerID uuid.UUID, limit int) ([]*queries.BookingView, error) {
	// #nosec G115 -- bounded by queries.MaxListLimit
	rows, err := r.queries.ListPlayerBookings(ctx, r.db, playerID, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list player bookings", err)
	}
	return rowsToBookingViews(rows), nil
}

func rowsToBookingViews(rows []pgsql.BookingDetailRow) []*queries.BookingView {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookingView(row)
	}
	return result
}

func rowToBookingView(row pgsql.BookingDetailRow) *queries.BookingView {
	return &queries.BookingView{
		ID:          row.ID,
		TurfID:      row.TurfID,
		TurfName:    row.TurfName,
		TurfAddress: row.TurfAddress,
		PlayerID:    row.PlayerID,
		PlayerName:  row.PlayerName,
		PlayerEmail: row.PlayerEmail,
		PlayerPhone: row.PlayerPhone,
		OwnerID:     row.OwnerID,
		SlotID:      row.SlotID,
		Date:        pgconv.DateFromPgtype(row.SlotDate).Format(booking.DateLayout),
		Start:       row.StartTime,
		End:         row.EndTime,
		Amount:      row.Amount,
		Status:      row.Status,
		QRUsed:      row.QrUsed,
		PaymentID:   pgconv.StringPtrFromPgtype(row.PaymentID),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
