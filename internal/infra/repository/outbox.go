package repository

import (
	"context"
	"time"

	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/pkg/pgconv"
	"turf-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const maxLastErrorLen = 1024

type OutboxQueries interface {
	InsertBookingEvent(ctx context.Context, db pgsql.DBTX, arg pgsql.InsertBookingEventParams) error
	ClaimUnpublishedBookingEvents(ctx context.Context, db pgsql.DBTX, limit, maxAttempts int32) ([]pgsql.BookingEvents, error)
	MarkBookingEventPublished(ctx context.Context, db pgsql.DBTX, id int64, at pgtype.Timestamptz) error
	MarkBookingEventFailed(ctx context.Context, db pgsql.DBTX, id int64, lastError string) error
}

type OutboxRepository struct {
	queries OutboxQueries
	db      pgsql.DBTX
}

func NewOutboxRepository(queries OutboxQueries, db pgsql.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, event shared.BookingEvent) error {
	err := r.queries.InsertBookingEvent(ctx, r.db, pgsql.InsertBookingEventParams{
		BookingID: event.BookingID,
		EventType: event.Type,
		Payload:   event.Payload,
		CreatedAt: pgconv.TimeToPgtype(event.OccurredAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue booking event", err)
	}
	return nil
}

// ClaimUnpublished locks the returned rows until the surrounding transaction ends.
func (r *OutboxRepository) ClaimUnpublished(ctx context.Context, limit, maxAttempts int) ([]*shared.OutboxEvent, error) {
	// #nosec G115 -- both values come from config and are small
	rows, err := r.queries.ClaimUnpublishedBookingEvents(ctx, r.db, int32(limit), int32(maxAttempts))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim booking events", err)
	}

	events := make([]*shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = &shared.OutboxEvent{
			ID:        row.ID,
			BookingID: row.BookingID,
			Type:      row.EventType,
			Payload:   row.Payload,
			Attempts:  int(row.Attempts),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id int64, at time.Time) error {
	if err := r.queries.MarkBookingEventPublished(ctx, r.db, id, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to mark booking event published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id int64, reason string) error {
	if len(reason) > maxLastErrorLen {
		reason = reason[:maxLastErrorLen]
	}
	if err := r.queries.MarkBookingEventFailed(ctx, r.db, id, reason); err != nil {
		return infra.WrapRepoErr("failed to mark booking event failed", err)
	}
	return nil
}
