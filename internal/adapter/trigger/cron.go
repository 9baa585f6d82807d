// Package trigger runs reconcile passes on a cron schedule.
package trigger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"budget-scheduler/internal/core/port"
)

// Cron drives a port.Reconciler from a cron expression evaluated in the
// policy timezone.
type Cron struct {
	rec        port.Reconciler
	logger     *slog.Logger
	spec       string
	parser     cron.Parser
	runOnStart bool
	now        func() time.Time

	mu  sync.Mutex
	c   *cron.Cron
	ctx context.Context
	loc *time.Location
}

// NewCron validates spec and returns a stopped trigger.
func NewCron(rec port.Reconciler, spec string, runOnStart bool, logger *slog.Logger) (*Cron, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(spec); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return &Cron{
		rec:        rec,
		logger:     logger,
		spec:       spec,
		parser:     parser,
		runOnStart: runOnStart,
		now:        time.Now,
	}, nil
}

// Start schedules passes until ctx is done or Stop is called. With
// runOnStart a pass is also started immediately.
func (t *Cron) Start(ctx context.Context, loc *time.Location) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.c != nil {
		return errors.New("trigger already started")
	}
	t.ctx = ctx
	if err := t.startLocked(loc); err != nil {
		return err
	}
	if t.runOnStart {
		go t.RunOnce(ctx)
	}
	return nil
}

func (t *Cron) startLocked(loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(
		cron.WithParser(t.parser),
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	ctx := t.ctx
	if _, err := c.AddFunc(t.spec, func() { t.RunOnce(ctx) }); err != nil {
		return err
	}
	c.Start()
	t.c, t.loc = c, loc

	next := c.Entries()[0].Next
	t.logger.Info("cron trigger started",
		slog.String("spec", t.spec),
		slog.String("timezone", loc.String()),
		slog.Time("next", next),
	)
	return nil
}

// SetLocation restarts the schedule in loc when it differs from the
// current one. It is a no-op on a stopped trigger.
func (t *Cron) SetLocation(loc *time.Location) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.c == nil || loc == nil || t.loc.String() == loc.String() {
		return nil
	}
	<-t.c.Stop().Done()
	t.c = nil
	return t.startLocked(loc)
}

// Stop halts the schedule and waits for a running pass to finish.
func (t *Cron) Stop() {
	t.mu.Lock()
	c := t.c
	t.c = nil
	t.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}

// RunOnce runs a single pass and logs its summary.
func (t *Cron) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	rep, err := t.rec.Reconcile(ctx, t.now())
	if err != nil {
		t.logger.Error("scheduled reconcile failed", slog.Any("error", err))
		return
	}
	t.logger.Info("scheduled reconcile finished",
		slog.String("run_id", rep.RunID),
		slog.String("mode", string(rep.Mode)),
		slog.Bool("transitioned", rep.Transitioned),
		slog.Int("failed", rep.Failed),
	)
}
