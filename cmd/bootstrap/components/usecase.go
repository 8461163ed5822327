package components

import (
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/usecase"
	"turf-booking/internal/usecase/commands"
	"turf-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			commands.NewSlotReservationManager,
			fx.As(new(commands.SlotReservation)),
		),
		fx.Annotate(
			commands.NewProfileResolver,
			fx.As(new(commands.ProfileCommands)),
		),
		fx.Annotate(
			commands.NewBookingLifecycle,
			fx.As(new(commands.BookingCommands)),
		),
		fx.Annotate(
			commands.NewBookingStatusMachine,
			fx.As(new(commands.BookingStatusCommands)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		fx.Annotate(
			queries.NewAvailabilityChecker,
			fx.As(new(queries.AvailabilityQueries)),
		),
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
