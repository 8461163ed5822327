//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/infra/repository"
	"turf-booking/internal/pkg/pgconv"
	"turf-booking/tests/common/builder"
	repositorymock "turf-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Insert Tests
// =============================================================================

func TestBookingRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name             string
		insertErr        error
		expectKind       infra.RepositoryErrorKind
		expectLiveSlot   bool
		expectConstraint string
	}{
		{name: "success: booking inserted"},
		{
			name: "error: live booking already holds the slot",
			insertErr: &pgconn.PgError{
				Code:           "23505",
				Message:        "duplicate key value violates unique constraint",
				ConstraintName: "bookings_live_slot_key",
			},
			expectKind:       infra.KindDuplicateKey,
			expectLiveSlot:   true,
			expectConstraint: "bookings_live_slot_key",
		},
		{
			name: "error: duplicate primary key",
			insertErr: &pgconn.PgError{
				Code:           "23505",
				Message:        "duplicate key value violates unique constraint",
				ConstraintName: "bookings_pkey",
			},
			expectKind:       infra.KindDuplicateKey,
			expectConstraint: "bookings_pkey",
		},
		{
			name:       "error: unknown turf",
			insertErr:  &pgconn.PgError{Code: "23503", ConstraintName: "bookings_turf_id_fkey"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{name: "error: database error", insertErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			b := builder.NewBookingBuilder().BuildDomain()

			mockQueries.EXPECT().InsertBooking(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgsql.DBTX, arg pgsql.Bookings) error {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, b.SlotID(), arg.SlotID)
					assert.Equal(t, "pending", arg.Status)
					assert.Equal(t, int64(1200), arg.Amount)
					return tc.insertErr
				})

			err := repo.Insert(ctx, b)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			assert.Equal(t, tc.expectLiveSlot, infra.IsLiveSlotConflict(err))
			if tc.expectConstraint != "" {
				assert.Equal(t, tc.expectConstraint, infra.ConstraintName(err))
			}
		})
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingQueries, *builder.BookingBuilder, pgsql.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking found",
			setupMock: func(mock *repositorymock.MockBookingQueries, b *builder.BookingBuilder, db pgsql.DBTX) {
				mock.EXPECT().GetBookingByID(ctx, db, b.ID).Return(b.BuildInfra(), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *repositorymock.MockBookingQueries, b *builder.BookingBuilder, db pgsql.DBTX) {
				mock.EXPECT().GetBookingByID(ctx, db, b.ID).Return(pgsql.Bookings{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *repositorymock.MockBookingQueries, b *builder.BookingBuilder, db pgsql.DBTX) {
				mock.EXPECT().GetBookingByID(ctx, db, b.ID).Return(pgsql.Bookings{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: stored status is unknown",
			setupMock: func(mock *repositorymock.MockBookingQueries, b *builder.BookingBuilder, db pgsql.DBTX) {
				row := b.BuildInfra()
				row.Status = "archived"
				mock.EXPECT().GetBookingByID(ctx, db, b.ID).Return(row, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)

			tc.setupMock(mockQueries, bb, mockDB)

			got, err := repo.FindByID(ctx, bb.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bb.ID, got.ID())
			assert.Equal(t, booking.StatusConfirmed, got.Status())
			assert.Equal(t, bb.SlotID, got.SlotID())
		})
	}
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		rowsAffected  int64
		queryErr      error
		expectSwapped bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: stored status matched", rowsAffected: 1, expectSwapped: true},
		{name: "success: stored status moved on", rowsAffected: 0, expectSwapped: false},
		{name: "error: serialization failure", queryErr: &pgconn.PgError{Code: "40001"}, expectKind: infra.KindConflict},
		{name: "error: database error", queryErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, pgsql.UpdateBookingStatusParams{
				ID:        id,
				From:      "pending",
				To:        "confirmed",
				UpdatedAt: pgconv.TimeToPgtype(at),
			}).Return(tc.rowsAffected, tc.queryErr)

			swapped, err := repo.UpdateStatus(ctx, id, booking.StatusPending, booking.StatusConfirmed, at)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.False(t, swapped)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectSwapped, swapped)
		})
	}
}

// =============================================================================
// ListStalePending Tests
// =============================================================================

func TestBookingRepository_ListStalePending(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2026, 3, 14, 8, 45, 0, 0, time.UTC)

	t.Run("success: rows become bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)
		first := builder.NewBookingBuilder()
		second := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.SlotID = "slot-19"; b.Start, b.End = "19:00", "20:00" })

		mockQueries.EXPECT().
			ListStalePendingBookings(ctx, mockDB, pgtype.Timestamptz{Time: cutoff, Valid: true}, int32(25)).
			Return([]pgsql.Bookings{first.BuildInfra(), second.BuildInfra()}, nil)

		got, err := repo.ListStalePending(ctx, cutoff, 25)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID())
		assert.Equal(t, "slot-19", got[1].SlotID())
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ListStalePendingBookings(ctx, mockDB, gomock.Any(), int32(25)).Return(nil, errDBConnectionLost)

		got, err := repo.ListStalePending(ctx, cutoff, 25)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, got)
	})
}
