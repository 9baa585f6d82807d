package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "budget-scheduler/internal/adapter/http"
	"budget-scheduler/internal/adapter/trigger"
	"budget-scheduler/internal/adapter/usecase"
	"budget-scheduler/internal/config/policy"
	"budget-scheduler/internal/core/domain"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the cron trigger, the HTTP API and policy hot reload",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	logger := a.logger

	watcher, err := policy.NewWatcher(a.cfg.PolicyPath, logger)
	if err != nil {
		return err
	}
	loc, err := watcher.Policy().Location()
	if err != nil {
		return err
	}
	platform, err := a.platform()
	if err != nil {
		return err
	}
	store, err := a.stateStore(ctx)
	if err != nil {
		return err
	}

	rec := usecase.NewBudgetReconciler(platform, store, watcher, logger,
		usecase.WithConcurrency(a.cfg.Scheduler.Concurrency))

	cron, err := trigger.NewCron(rec, a.cfg.Scheduler.Cron, a.cfg.Scheduler.RunOnStart, logger)
	if err != nil {
		return err
	}
	watcher.OnChange(func(p domain.Policy) {
		loc, err := p.Location()
		if err != nil {
			return
		}
		if err = cron.SetLocation(loc); err != nil {
			logger.Error("reschedule failed", slog.Any("error", err))
		}
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return watcher.Watch(ctx) })

	if err = cron.Start(ctx, loc); err != nil {
		return err
	}
	defer cron.Stop()

	if a.cfg.HTTP.Port != 0 {
		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", a.cfg.HTTP.Port),
			Handler:           httpadapter.NewHandler(rec, logger).Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		g.Go(func() error {
			logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server shutdown error", slog.Any("error", err))
				return err
			}
			logger.Info("server gracefully stopped")
			return nil
		})
	}

	err = g.Wait()
	logger.Info("scheduler stopped")
	return err
}
