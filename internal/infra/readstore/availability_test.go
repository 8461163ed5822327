//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/infra/readstore"
	"turf-booking/internal/usecase/queries"
	readstoremock "turf-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindSlot Tests
// =============================================================================

func TestAvailabilityReadStore_FindSlot(t *testing.T) {
	ctx := context.Background()
	turfID := uuid.New()

	testCases := []struct {
		name       string
		row        pgsql.TurfSlots
		queryErr   error
		expected   *queries.SlotView
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: slot view mapped",
			row: pgsql.TurfSlots{
				TurfID: turfID, SlotID: "slot-18", StartTime: "18:00", EndTime: "19:00", Price: 1200, Available: false,
			},
			expected: &queries.SlotView{
				TurfID: turfID, SlotID: "slot-18", Start: "18:00", End: "19:00", Price: 1200, Available: false,
			},
		},
		{name: "error: slot not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", queryErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockAvailabilityQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewAvailabilityReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().GetTurfSlot(ctx, mockDB, turfID, "slot-18").Return(tc.row, tc.queryErr)

			got, err := store.FindSlot(ctx, turfID, "slot-18")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

// =============================================================================
// HoldingBookingIDs Tests
// =============================================================================

func TestAvailabilityReadStore_HoldingBookingIDs(t *testing.T) {
	ctx := context.Background()
	turfID := uuid.New()
	first, second := uuid.New(), uuid.New()
	holding := []string{"pending", "confirmed", "completed"}

	testCases := []struct {
		name       string
		rows       []pgsql.Bookings
		queryErr   error
		expected   []uuid.UUID
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:     "success: ids of holding bookings",
			rows:     []pgsql.Bookings{{ID: first}, {ID: second}},
			expected: []uuid.UUID{first, second},
		},
		{name: "success: nothing holds the slot", rows: nil, expected: []uuid.UUID{}},
		{name: "error: database error", queryErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockAvailabilityQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewAvailabilityReadStore(mockQueries, mockDB)

			// cancelled never holds a slot and must not be asked for
			mockQueries.EXPECT().ListBookingsByTurfSlot(ctx, mockDB, turfID, "slot-18", holding).Return(tc.rows, tc.queryErr)

			got, err := store.HoldingBookingIDs(ctx, turfID, "slot-18")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
