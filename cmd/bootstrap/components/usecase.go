package components

import (
	"log/slog"

	"bookwise/internal/domain/schedule"
	"bookwise/internal/pkg/clock"
	"bookwise/internal/pkg/config"
	"bookwise/internal/usecase/commands"
	"bookwise/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.BookingConfig, logger *slog.Logger) schedule.Generator {
		gen := schedule.NewGenerator(cfg.GranularityMinutes)
		logger.Info("slot generator configured", "granularity_minutes", gen.Granularity())
		return gen
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
	),
)
