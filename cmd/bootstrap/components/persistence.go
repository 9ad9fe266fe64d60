package components

import (
	"context"
	"log/slog"
	"time"

	"office-hours/internal/infra/db"
	"office-hours/internal/infra/memstore"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/internal/infra/uow"
	"office-hours/internal/pkg/config"
	"office-hours/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const startupTimeout = 30 * time.Second

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewUnitOfWork,
	),
)

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

// NewUnitOfWork picks the backing store from STORE_DRIVER.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, q *sqlc.Queries, logger *slog.Logger) (shared.UnitOfWork, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memstore.New(logger)
		lc.Append(fx.StopHook(store.Close))
		logger.Info("using in-memory store")
		return store, nil
	}

	pool, err := NewDB(lc, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("using postgres store", "host", cfg.DB.Host, "tx_max_retries", cfg.Store.TxMaxRetries)
	return uow.NewPostgresUoW(pool, q, cfg.Store, logger), nil
}

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	if cfg.DB.AutoMigrate {
		if err := migrate(ctx, pool, logger); err != nil {
			return nil, err
		}
	}

	return pool, nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	migrator, err := db.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			logger.Warn("failed to close migrator", "error", err.Error())
		}
	}()
	return migrator.Up(ctx)
}
