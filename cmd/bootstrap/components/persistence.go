package components

import (
	"bookwise/internal/infra/cache"
	"bookwise/internal/infra/db"
	"bookwise/internal/infra/readstore"
	"bookwise/internal/infra/uow"
	"bookwise/internal/pkg/config"
	"bookwise/internal/usecase/queries"
	"bookwise/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(shared.ServiceReadStore)),
		),
		fx.Annotate(
			readstore.NewProviderReadStore,
			fx.As(new(shared.ProviderReadStore)),
		),
		fx.Annotate(
			readstore.NewWorkingHoursReadStore,
			fx.As(new(shared.WorkingHoursReadStore)),
		),
		// Read-side ledger serves both slot computation and the appointment views
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(shared.AppointmentReadStore)),
			fx.As(new(queries.AppointmentViewReadStore)),
		),
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(shared.AvailabilityCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Redis.TTL)
}
