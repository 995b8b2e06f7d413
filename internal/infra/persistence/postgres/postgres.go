package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"campnav/config"
	"campnav/internal/domain/lifecycle"
	"campnav/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary and replica pools described by the postgres config.
// The schema is migrated on start when database.autoMigrate is set.
func New(params Params) (*gorm.DB, error) {
	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	// Multi-statement writes go through TransactionManager.Execute.
	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newSQLLogger(params.Logger, params.Config),
	})

	pool, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres connection pool")
	}

	stopSampling := func() {}
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := pool.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if params.Config.Database != nil && params.Config.Database.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("Schema up to date", slog.Int("tables", len(model.All())))
			}

			var sampleCtx context.Context
			sampleCtx, stopSampling = context.WithCancel(context.Background())
			go samplePoolWaits(sampleCtx, params.Logger, pool)

			return nil
		},
		OnStop: func(context.Context) error {
			stopSampling()

			return errors.WithStack(pool.Close())
		},
	})

	return db, nil
}

// Migrate creates or updates the tables and secondary indexes of every model.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(model.All()...), "migrate schema")
}

// samplePoolWaits reports callers that had to wait for a free connection
// since the previous sample.
func samplePoolWaits(ctx context.Context, logger *slog.Logger, pool *sql.DB) {
	ticker := time.NewTicker(poolSampleInterval)
	defer ticker.Stop()

	last := pool.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		now := pool.Stats()
		waits := now.WaitCount - last.WaitCount
		waited := now.WaitDuration - last.WaitDuration
		last = now
		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolWaitWarnAfter {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "Postgres callers waited for a connection",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avg_wait", waited/time.Duration(waits)),
			slog.Int("open", now.OpenConnections),
			slog.Int("in_use", now.InUse),
			slog.Int("idle", now.Idle),
			slog.Int("max_open", now.MaxOpenConnections),
		)
	}
}
