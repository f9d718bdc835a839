package components

import (
	"warung-loyalty/internal/infra/cache"
	"warung-loyalty/internal/infra/db"
	"warung-loyalty/internal/infra/readstore"
	"warung-loyalty/internal/infra/uow"
	"warung-loyalty/internal/pkg/config"
	"warung-loyalty/internal/usecase/commands"
	"warung-loyalty/internal/usecase/queries"
	"warung-loyalty/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
		fx.Annotate(
			readstore.NewLoyaltyReadStore,
			fx.As(new(queries.LoyaltyReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Settings reads go through the redis cache; the raw store stays
		// private to this wiring.
		readstore.NewSettingsReadStore,
		fx.Annotate(
			NewSettingsCache,
			fx.As(new(queries.SettingsReadStore)),
			fx.As(new(commands.SettingsCacheInvalidator)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewSettingsCache(client *redis.Client, raw *readstore.SettingsReadStore, cfg config.Config) *cache.SettingsCache {
	return cache.NewSettingsCache(client, raw, cfg.Redis.SettingsTTL)
}
