package postgres

import (
	"context"
	"log/slog"

	"vitae/config"
	"vitae/internal/domain/lifecycle"
	"vitae/internal/errors"
	"vitae/internal/infra/metrics"
	"vitae/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// poolMetricsName is the db_name label of the exported pool statistics.
const poolMetricsName = "postgres"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// New opens the account database and ties its lifetime to the fx app: the
// connection is pinged (and optionally migrated) on start and closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Unique violations surface as gorm.ErrDuplicatedKey.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-statement writes go through TransactionManager.Execute instead.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if err := params.Metrics.ObserveDB(sqlDB, poolMetricsName); err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Migration != nil && params.Config.Migration.AutoMigrate {
				if err := db.WithContext(ctx).AutoMigrate(model.AllModels()...); err != nil {
					return errors.Wrap(err, "failed to migrate PostgreSQL schema")
				}
				params.Logger.InfoContext(ctx, "PostgreSQL schema migrated")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

