package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertBookingEvent = `
INSERT INTO booking_events (booking_id, event_type, payload, created_at)
VALUES ($1, $2, $3, $4)
`

type InsertBookingEventParams struct {
	BookingID uuid.UUID
	EventType string
	Payload   []byte
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) InsertBookingEvent(ctx context.Context, db DBTX, arg InsertBookingEventParams) error {
	_, err := db.Exec(ctx, insertBookingEvent, arg.BookingID, arg.EventType, arg.Payload, arg.CreatedAt)
	return err
}

// Must run inside a transaction; SKIP LOCKED lets several dispatchers share the table.
const claimUnpublishedBookingEvents = `
SELECT id, booking_id, event_type, payload, attempts, last_error, created_at, published_at
FROM booking_events
WHERE published_at IS NULL AND attempts < $2
ORDER BY id
LIMIT $1
FOR UPDATE SKIP LOCKED
`

func (q *Queries) ClaimUnpublishedBookingEvents(ctx context.Context, db DBTX, limit, maxAttempts int32) ([]BookingEvents, error) {
	rows, err := db.Query(ctx, claimUnpublishedBookingEvents, limit, maxAttempts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BookingEvents
	for rows.Next() {
		var i BookingEvents
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.EventType,
			&i.Payload,
			&i.Attempts,
			&i.LastError,
			&i.CreatedAt,
			&i.PublishedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markBookingEventPublished = `
UPDATE booking_events SET published_at = $2, attempts = attempts + 1, last_error = NULL WHERE id = $1
`

func (q *Queries) MarkBookingEventPublished(ctx context.Context, db DBTX, id int64, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markBookingEventPublished, id, at)
	return err
}

const markBookingEventFailed = `
UPDATE booking_events SET attempts = attempts + 1, last_error = $2 WHERE id = $1
`

func (q *Queries) MarkBookingEventFailed(ctx context.Context, db DBTX, id int64, lastError string) error {
	_, err := db.Exec(ctx, markBookingEventFailed, id, lastError)
	return err
}
