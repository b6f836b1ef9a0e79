package components

import (
	"fitroom-backend/internal/pkg/clock"
	"fitroom-backend/internal/pkg/config"
	"fitroom-backend/internal/usecase"
	"fitroom-backend/internal/usecase/commands"
	"fitroom-backend/internal/usecase/queries"

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
	clock.NewRealScheduler,
	func(cfg config.Config) config.FittingRoomConfig { return cfg.FittingRoom },
	func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewFittingRoomCommands,
		commands.NewNotificationCommands,
		// Lifecycle commands publish through the notification dispatcher.
		func(n commands.NotificationCommands) commands.Notifier { return n },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewItemQueries,
		queries.NewFittingRoomQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
