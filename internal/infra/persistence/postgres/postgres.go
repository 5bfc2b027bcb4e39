package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"eats/config"
	"eats/internal/domain/constants"
	"eats/internal/domain/lifecycle"
	"eats/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary (and any replicas) through go-lib and registers the
// ping, migration and pool monitor with the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, sqlDB)
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if params.Config.Env.Env != constants.EnvProduction {
				if err := model.AutoMigrate(db.WithContext(ctx)); err != nil {
					return errors.Wrap(err, "failed to migrate schema")
				}
			}
			monitor.start()

			return nil
		},
		OnStop: func(_ context.Context) error {
			monitor.stop()

			return sqlDB.Close()
		},
	})

	return db, nil
}

const (
	poolMonitorInterval = 5 * time.Second
	poolWaitWarnAfter   = 50 * time.Millisecond
)

// poolMonitor reports connection pool contention between two samples.
type poolMonitor struct {
	logger *slog.Logger
	db     *sql.DB
	cancel context.CancelFunc
	done   chan struct{}
}

func newPoolMonitor(logger *slog.Logger, db *sql.DB) *poolMonitor {
	return &poolMonitor{logger: logger, db: db}
}

func (m *poolMonitor) start() {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)

		ticker := time.NewTicker(poolMonitorInterval)
		defer ticker.Stop()

		prev := m.db.Stats()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cur := m.db.Stats()
				m.report(ctx, prev, cur)
				prev = cur
			}
		}
	}()
}

func (m *poolMonitor) stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 || m.logger == nil {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpen", cur.MaxOpenConnections),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
