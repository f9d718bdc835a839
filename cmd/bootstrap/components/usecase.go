package components

import (
	"warung-loyalty/internal/pkg/clock"
	"warung-loyalty/internal/usecase"
	"warung-loyalty/internal/usecase/commands"
	"warung-loyalty/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewTokenValidator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOrderQueries,
		queries.NewLoyaltyQueries,
		queries.NewVoucherQueries,
		queries.NewCheckoutQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCheckoutCommands,
		commands.NewAdminCommands,
	),
)
