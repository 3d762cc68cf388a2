package persistence

import (
	"log/slog"

	"go.uber.org/fx"

	"identity/config"
	"identity/internal/domain/repository"
	"identity/internal/errors"
	"identity/internal/infra/persistence/memory"
	"identity/internal/infra/persistence/postgres"
)

// RepositoryParams defines the dependencies for selecting a storage driver.
type RepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityRepository opens the configured storage driver.
func NewIdentityRepository(params RepositoryParams) (repository.IdentityRepository, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory identity storage; records are lost on restart")

		return memory.NewIdentityRepository(), nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using PostgreSQL identity storage")

		return postgres.NewIdentityRepository(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
