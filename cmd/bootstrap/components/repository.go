package components

import (
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/infra/readstore"
	"turf-booking/internal/infra/repository"
	"turf-booking/internal/infra/uow"
	"turf-booking/internal/usecase/queries"
	"turf-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewTxBeginner,
)

var readstoreModule = fx.Module("repository/readstore",
	fx.Provide(
		// Availability
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AvailabilityQueries)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Booking views
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var repositoryModule = fx.Module("repository/write",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SlotQueries)),
		),
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(shared.SlotRepository)),
		),
		// Profile
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ProfileQueries)),
		),
		fx.Annotate(
			repository.NewProfileRepository,
			fx.As(new(shared.ProfileRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) uow.TxBeginner {
	return pool
}
