// Package persistence selects the store implementation backing the repositories.
package persistence

import (
	"log/slog"

	"deliveryzone/config"
	"deliveryzone/internal/domain/constants"
	"deliveryzone/internal/domain/repository"
	"deliveryzone/internal/errors"
	"deliveryzone/internal/infra/persistence/memory"
	"deliveryzone/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Stores are the repositories handed to the use cases.
type Stores struct {
	fx.Out

	ZoneRepo       repository.ZoneRepository
	RestaurantRepo repository.RestaurantRepository
	TxManager      repository.TransactionManager
}

// NewStores builds the repositories for the configured driver.
func NewStores(params Params) (Stores, error) {
	driver := params.Config.Persistence.Driver

	switch driver {
	case constants.PersistenceDriverMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()

		return Stores{
			ZoneRepo:       memory.NewZoneRepository(store),
			RestaurantRepo: memory.NewRestaurantRepository(store),
			TxManager:      memory.NewTransactionManager(store),
		}, nil

	case constants.PersistenceDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Stores{}, err
		}

		return Stores{
			ZoneRepo:       postgres.NewZoneRepository(db),
			RestaurantRepo: postgres.NewRestaurantRepository(db),
			TxManager:      postgres.NewTransactionManager(db),
		}, nil

	default:
		return Stores{}, errors.Errorf("unknown persistence driver: %q", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStores),
)
