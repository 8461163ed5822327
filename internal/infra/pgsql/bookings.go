package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `b.id, b.turf_id, b.player_id, b.owner_id, b.slot_id, b.slot_date, b.start_time, b.end_time,
	b.amount, b.status, b.qr_used, b.payment_id, b.created_at, b.updated_at`

func scanBooking(row pgx.Row, extra ...any) (Bookings, error) {
	var i Bookings
	dest := []any{
		&i.ID,
		&i.TurfID,
		&i.PlayerID,
		&i.OwnerID,
		&i.SlotID,
		&i.SlotDate,
		&i.StartTime,
		&i.EndTime,
		&i.Amount,
		&i.Status,
		&i.QrUsed,
		&i.PaymentID,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return i, err
}

const insertBooking = `
INSERT INTO bookings (
	id, turf_id, player_id, owner_id, slot_id, slot_date, start_time, end_time,
	amount, status, qr_used, payment_id, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg Bookings) error {
	_, err := db.Exec(ctx, insertBooking,
		arg.ID,
		arg.TurfID,
		arg.PlayerID,
		arg.OwnerID,
		arg.SlotID,
		arg.SlotDate,
		arg.StartTime,
		arg.EndTime,
		arg.Amount,
		arg.Status,
		arg.QrUsed,
		arg.PaymentID,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const listBookingsByTurfSlot = `
SELECT ` + bookingColumns + `
FROM bookings b
WHERE b.turf_id = $1 AND b.slot_id = $2 AND b.status = ANY($3::text[])
ORDER BY b.created_at
`

func (q *Queries) ListBookingsByTurfSlot(ctx context.Context, db DBTX, turfID uuid.UUID, slotID string, statuses []string) ([]Bookings, error) {
	rows, err := db.Query(ctx, listBookingsByTurfSlot, turfID, slotID, statuses)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// Compare-and-set on the current status; zero affected rows means another writer got there first.
const updateBookingStatus = `
UPDATE bookings
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2
`

type UpdateBookingStatusParams struct {
	ID        uuid.UUID
	From      string
	To        string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.From, arg.To, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listStalePendingBookings = `
SELECT ` + bookingColumns + `
FROM bookings b
WHERE b.status = 'pending' AND b.created_at < $1
ORDER BY b.created_at
LIMIT $2
`

func (q *Queries) ListStalePendingBookings(ctx context.Context, db DBTX, before pgtype.Timestamptz, limit int32) ([]Bookings, error) {
	rows, err := db.Query(ctx, listStalePendingBookings, before, limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]Bookings, error) {
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		i, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// BookingDetailRow is a booking joined with its turf and player for read views.
type BookingDetailRow struct {
	Bookings
	TurfName    string
	TurfAddress string
	PlayerName  string
	PlayerEmail string
	PlayerPhone string
}

const bookingDetailSelect = `
SELECT ` + bookingColumns + `,
	t.name, t.address, p.name, p.email, p.phone
FROM bookings b
JOIN turfs t ON t.id = b.turf_id
JOIN profiles p ON p.id = b.player_id
`

func scanBookingDetail(row pgx.Row) (BookingDetailRow, error) {
	var d BookingDetailRow
	b, err := scanBooking(row, &d.TurfName, &d.TurfAddress, &d.PlayerName, &d.PlayerEmail, &d.PlayerPhone)
	d.Bookings = b
	return d, err
}

func collectBookingDetails(rows pgx.Rows) ([]BookingDetailRow, error) {
	defer rows.Close()
	var items []BookingDetailRow
	for rows.Next() {
		d, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getBookingDetail = bookingDetailSelect + `WHERE b.id = $1`

func (q *Queries) GetBookingDetail(ctx context.Context, db DBTX, id uuid.UUID) (BookingDetailRow, error) {
	return scanBookingDetail(db.QueryRow(ctx, getBookingDetail, id))
}

const listOwnerBookings = bookingDetailSelect + `
WHERE b.owner_id = $1
  AND ($2::text IS NULL OR b.status = $2)
  AND ($3::timestamptz IS NULL OR b.created_at >= $3)
ORDER BY b.created_at DESC
LIMIT $4
`

type ListOwnerBookingsParams struct {
	OwnerID uuid.UUID
	Status  pgtype.Text
	Since   pgtype.Timestamptz
	Limit   int32
}

func (q *Queries) ListOwnerBookings(ctx context.Context, db DBTX, arg ListOwnerBookingsParams) ([]BookingDetailRow, error) {
	rows, err := db.Query(ctx, listOwnerBookings, arg.OwnerID, arg.Status, arg.Since, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookingDetails(rows)
}

const listPlayerBookings = bookingDetailSelect + `
WHERE b.player_id = $1
ORDER BY b.created_at DESC
LIMIT $2
`

func (q *Queries) ListPlayerBookings(ctx context.Context, db DBTX, playerID uuid.UUID, limit int32) ([]BookingDetailRow, error) {
	rows, err := db.Query(ctx, listPlayerBookings, playerID, limit)
	if err != nil {
		return nil, err
	}
	return collectBookingDetails(rows)
}
