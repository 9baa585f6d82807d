package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"budget-scheduler/internal/adapter/meta"
	"budget-scheduler/internal/adapter/postgres"
	"budget-scheduler/internal/adapter/sqlite"
	"budget-scheduler/internal/adapter/statefile"
	"budget-scheduler/internal/config"
	"budget-scheduler/internal/config/configs"
	"budget-scheduler/internal/core/port"
	"budget-scheduler/internal/db"
)

// app holds what every command needs: configuration, a logger and the
// closers of opened resources.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	closers []func()
}

func bootstrap(opts *rootOptions, logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.policyPath != "" {
		cfg.PolicyPath = opts.policyPath
	}
	logger := newLogger(cfg.Log, logOut).With(slog.String("env", cfg.Env))
	return &app{cfg: cfg, logger: logger}, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newLogger builds the structured logger described by cfg.
func newLogger(cfg configs.Logger, w io.Writer) *slog.Logger {
	var handler slog.Handler
	level := cfg.SlogLevel()
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

func (a *app) platform() (*meta.Client, error) {
	return meta.New(a.cfg.Meta)
}

// stateStore opens the store selected by STATE_DRIVER.
func (a *app) stateStore(ctx context.Context) (port.StateStore, error) {
	driver, err := a.cfg.State.NormalizedDriver()
	if err != nil {
		return nil, err
	}
	switch driver {
	case configs.StateDriverPostgres:
		if a.cfg.Psql.RunMigrations {
			if err = a.migrate(ctx); err != nil {
				return nil, err
			}
		}
		pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		return postgres.NewStateStore(pool, a.cfg.Psql.Schema), nil
	case configs.StateDriverSQLite:
		s, err := sqlite.Open(ctx, a.cfg.State.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite state: %w", err)
		}
		a.closers = append(a.closers, func() { _ = s.Close() })
		return s, nil
	default:
		return statefile.New(a.cfg.State.Path), nil
	}
}

// migrate creates the configured schema and applies the embedded
// migrations.
func (a *app) migrate(ctx context.Context) error {
	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if err = db.EnsureSchema(ctx, pool, a.cfg.Psql.Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err = db.Migrate(db.WithSearchPath(a.cfg.Psql.Addr, a.cfg.Psql.Schema)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	a.logger.Info("migrations applied successfully", slog.String("schema", a.cfg.Psql.Schema))
	return nil
}
