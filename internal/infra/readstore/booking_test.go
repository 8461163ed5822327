//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/infra/readstore"
	"turf-booking/internal/usecase/queries"
	"turf-booking/tests/common/builder"
	readstoremock "turf-booking/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func detailRow(b *builder.BookingBuilder) pgsql.BookingDetailRow {
	return pgsql.BookingDetailRow{
		Bookings:    b.BuildInfra(),
		TurfName:    "Green Field Arena",
		TurfAddress: "12 Stadium Road",
		PlayerName:  "Test Player",
		PlayerEmail: "player@example.com",
		PlayerPhone: "+91 98450 00000",
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)

	testCases := []struct {
		name       string
		row        pgsql.BookingDetailRow
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: booking view found", row: detailRow(bb)},
		{name: "error: booking not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", queryErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewBookingReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().GetBookingDetail(ctx, mockDB, bb.ID).Return(tc.row, tc.queryErr)

			got, err := store.FindByID(ctx, bb.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			want := &queries.BookingView{
				ID:          bb.ID,
				TurfID:      bb.TurfID,
				TurfName:    "Green Field Arena",
				TurfAddress: "12 Stadium Road",
				PlayerID:    bb.PlayerID,
				PlayerName:  "Test Player",
				PlayerEmail: "player@example.com",
				PlayerPhone: "+91 98450 00000",
				OwnerID:     bb.OwnerID,
				SlotID:      "slot-18",
				Date:        "2026-03-20",
				Start:       "18:00",
				End:         "19:00",
				Amount:      1200,
				Status:      "confirmed",
				CreatedAt:   bb.CreatedAt,
				UpdatedAt:   bb.UpdatedAt,
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("booking view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// =============================================================================
// ListByOwner / ListByPlayer Tests
// =============================================================================

func TestBookingReadStore_ListByOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	status := "pending"
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		filter   queries.OwnerBookingFilter
		expected pgsql.ListOwnerBookingsParams
	}{
		{
			name:   "no filters",
			filter: queries.OwnerBookingFilter{Limit: 50},
			expected: pgsql.ListOwnerBookingsParams{
				OwnerID: ownerID,
				Limit:   50,
			},
		},
		{
			name:   "status and since",
			filter: queries.OwnerBookingFilter{Status: &status, Since: &since, Limit: 10},
			expected: pgsql.ListOwnerBookingsParams{
				OwnerID: ownerID,
				Status:  pgtype.Text{String: "pending", Valid: true},
				Since:   pgtype.Timestamptz{Time: since, Valid: true},
				Limit:   10,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewBookingReadStore(mockQueries, mockDB)
			bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.OwnerID = ownerID })

			mockQueries.EXPECT().ListOwnerBookings(ctx, mockDB, tc.expected).Return([]pgsql.BookingDetailRow{detailRow(bb)}, nil)

			got, err := store.ListByOwner(ctx, ownerID, tc.filter)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, bb.ID, got[0].ID)
			assert.Equal(t, "Test Player", got[0].PlayerName)
		})
	}

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListOwnerBookings(ctx, mockDB, gomock.Any()).Return(nil, errDBConnectionLost)

		got, err := store.ListByOwner(ctx, ownerID, queries.OwnerBookingFilter{Limit: 50})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, got)
	})
}

func TestBookingReadStore_ListByPlayer(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewBookingReadStore(mockQueries, mockDB)

	mockQueries.EXPECT().ListPlayerBookings(ctx, mockDB, playerID, int32(50)).Return([]pgsql.BookingDetailRow{}, nil)

	got, err := store.ListByPlayer(ctx, playerID, 50)
	require.NoError(t, err)
	assert.Empty(t, got)
}
