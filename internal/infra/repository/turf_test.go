//go:build unit

package repository_test

import (
	"context"
	"testing"

	"turf-booking/internal/infra"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/infra/repository"
	"turf-booking/tests/common/builder"
	repositorymock "turf-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTurfRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: turf and slots written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTurfQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTurfRepository(mockQueries, mockDB)
		tb := builder.NewTurfBuilder()

		gomock.InOrder(
			mockQueries.EXPECT().CreateTurf(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgsql.DBTX, arg pgsql.CreateTurfParams) error {
					assert.Equal(t, tb.ID, arg.ID)
					assert.Equal(t, tb.OwnerID, arg.OwnerID)
					return nil
				}),
			mockQueries.EXPECT().CreateTurfSlots(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgsql.DBTX, args []pgsql.CreateTurfSlotParams) error {
					require.Len(t, args, 17)
					assert.Equal(t, pgsql.CreateTurfSlotParams{
						TurfID: tb.ID, SlotID: "slot-06", StartTime: "06:00", EndTime: "07:00", Price: 1200, Available: true,
					}, args[0])
					return nil
				}),
		)

		assert.NoError(t, repo.Create(ctx, tb.BuildDomain(), tb.BuildSlots()))
	})

	t.Run("error: failed turf insert skips slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTurfQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTurfRepository(mockQueries, mockDB)
		tb := builder.NewTurfBuilder()

		mockQueries.EXPECT().CreateTurf(ctx, mockDB, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "turfs_owner_id_fkey"})

		err := repo.Create(ctx, tb.BuildDomain(), tb.BuildSlots())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}
