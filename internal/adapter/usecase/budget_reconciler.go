package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"budget-scheduler/internal/core/domain"
	"budget-scheduler/internal/core/port"
)

const defaultConcurrency = 4

// BudgetReconciler implements port.Reconciler. It lowers budgets when the
// nightly window starts and restores them when it ends, remembering the
// pre-nightly budgets in the StateStore.
type BudgetReconciler struct {
	platform port.AdsPlatform
	store    port.StateStore
	policies port.PolicySource
	logger   *slog.Logger

	// concurrency bounds in-flight SetBudget calls.
	concurrency int
	forceDryRun bool

	// mu serialises passes within the process; the store assumes a single
	// writer.
	mu sync.Mutex
}

// Option customises a BudgetReconciler.
type Option func(*BudgetReconciler)

// WithConcurrency sets how many SetBudget calls may run at once. Values
// below one are ignored.
func WithConcurrency(n int) Option {
	return func(r *BudgetReconciler) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithDryRun forces dry-run regardless of the policy.
func WithDryRun(force bool) Option {
	return func(r *BudgetReconciler) { r.forceDryRun = force }
}

// NewBudgetReconciler wires the reconciler to its collaborators. The
// platform is a capability object owned by the caller.
func NewBudgetReconciler(platform port.AdsPlatform, store port.StateStore, policies port.PolicySource, logger *slog.Logger, opts ...Option) *BudgetReconciler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &BudgetReconciler{
		platform:    platform,
		store:       store,
		policies:    policies,
		logger:      logger,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// change is one planned mutation.
type change struct {
	entity domain.BudgetableEntity
	target int64
}

// Reconcile runs one pass. On a fatal error after mutations were issued the
// partial report is returned together with the error; the stored mode is
// left unchanged so the next pass retries the transition.
func (r *BudgetReconciler) Reconcile(ctx context.Context, now time.Time) (*port.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	policy := r.policy()
	decision, err := domain.ResolveMode(now, policy)
	if err != nil {
		return nil, err
	}

	state, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStateLoad, err)
	}
	state = state.Clone()

	report := &port.Report{
		RunID:        uuid.NewString(),
		Mode:         decision.Mode,
		PreviousMode: state.LastMode,
		LocalTime:    decision.LocalTime,
		DryRun:       policy.DryRun,
		Outcomes:     []port.Outcome{},
		Warnings:     []port.Warning{},
	}
	logger := r.logger.With(
		slog.String("run_id", report.RunID),
		slog.String("mode", string(decision.Mode)),
		slog.String("local_time", decision.LocalTime),
	)

	if decision.Mode == state.LastMode {
		logger.Info("already in mode, nothing to do")
		return report, nil
	}
	report.Transitioned = true
	logger.Info("mode transition",
		slog.String("from", string(state.LastMode)),
		slog.Bool("dry_run", policy.DryRun),
	)

	all, err := r.platform.ListActiveBudgetEntities(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrListEntities, err)
	}
	live := make([]domain.BudgetableEntity, 0, len(all))
	for _, e := range all {
		if policy.Excludes(e) {
			logger.Debug("skipping excluded entity", slog.String("id", e.ID), slog.String("kind", string(e.Kind)))
			continue
		}
		live = append(live, e)
	}

	var plan []change
	switch decision.Mode {
	case domain.ModeNightly:
		plan = r.planNightly(policy, state, live, logger)
	case domain.ModeDaytime:
		plan, report.Warnings = r.planDaytime(policy, state, live, logger)
	}

	report.Outcomes = r.apply(ctx, policy.DryRun, plan, logger)
	for _, o := range report.Outcomes {
		report.Attempted++
		if o.Success {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	if err = ctx.Err(); err != nil {
		return report, fmt.Errorf("%w: pass interrupted: %w", port.ErrStateSave, err)
	}
	at := now
	state.LastMode = decision.Mode
	state.LastRunAt = &at
	if err = r.store.Save(ctx, state); err != nil {
		return report, fmt.Errorf("%w: %w", port.ErrStateSave, err)
	}

	logger.Info("reconcile finished",
		slog.Int("entities", len(live)),
		slog.Int("attempted", report.Attempted),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
		slog.Int("warnings", len(report.Warnings)),
	)
	return report, nil
}

// planNightly records originals into state and returns the entities that
// are not yet at the nightly target.
func (r *BudgetReconciler) planNightly(policy domain.Policy, state domain.SchedulerState, live []domain.BudgetableEntity, logger *slog.Logger) []change {
	target := policy.Budgets.NightlyAmountCents
	plan := make([]change, 0, len(live))
	for _, e := range live {
		stored, ok := state.OriginalBudgets[e.ID]
		switch {
		case !ok:
			state.OriginalBudgets[e.ID] = e.CurrentBudgetCents
			logger.Info("stored original budget", entityAttrs(e), slog.Int64("budget_cents", e.CurrentBudgetCents))
		case stored == e.CurrentBudgetCents:
		default:
			state.OriginalBudgets[e.ID] = e.CurrentBudgetCents
			logger.Info("updated original budget", entityAttrs(e),
				slog.Int64("previous_cents", stored), slog.Int64("budget_cents", e.CurrentBudgetCents))
		}
		if e.CurrentBudgetCents != target {
			plan = append(plan, change{entity: e, target: target})
		}
	}
	return plan
}

// planDaytime returns the entities to restore. Entities without a restore
// target are reported as warnings and left untouched.
func (r *BudgetReconciler) planDaytime(policy domain.Policy, state domain.SchedulerState, live []domain.BudgetableEntity, logger *slog.Logger) ([]change, []port.Warning) {
	plan := make([]change, 0, len(live))
	warnings := []port.Warning{}
	fixed := policy.RestoreStrategy() == domain.RestoreFixed
	for _, e := range live {
		target, ok := state.OriginalBudgets[e.ID]
		if fixed {
			target, ok = policy.Budgets.DaytimeAmountCents, true
		}
		if !ok {
			msg := "no stored original budget, keeping current"
			logger.Warn(msg, entityAttrs(e), slog.Int64("budget_cents", e.CurrentBudgetCents))
			warnings = append(warnings, port.Warning{ID: e.ID, Name: e.Name, Kind: e.Kind, Message: msg})
			continue
		}
		if e.CurrentBudgetCents != target {
			plan = append(plan, change{entity: e, target: target})
		}
	}
	return plan, warnings
}

// apply issues the planned mutations on a bounded pool. Outcomes keep the
// order of plan.
func (r *BudgetReconciler) apply(ctx context.Context, dryRun bool, plan []change, logger *slog.Logger) []port.Outcome {
	outcomes := make([]port.Outcome, len(plan))
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, c := range plan {
		g.Go(func() error {
			outcomes[i] = r.applyOne(ctx, dryRun, c, logger)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (r *BudgetReconciler) applyOne(ctx context.Context, dryRun bool, c change, logger *slog.Logger) port.Outcome {
	e := c.entity
	o := port.Outcome{
		ID:             e.ID,
		Name:           e.Name,
		Kind:           e.Kind,
		OldBudgetCents: e.CurrentBudgetCents,
		NewBudgetCents: c.target,
		DryRun:         dryRun,
	}
	attrs := []any{entityAttrs(e), slog.Int64("old_cents", o.OldBudgetCents), slog.Int64("new_cents", o.NewBudgetCents)}

	if dryRun {
		o.Success = true
		logger.Info("would update budget", attrs...)
		return o
	}
	if err := r.platform.SetBudget(ctx, e.ID, e.Kind, c.target); err != nil {
		o.Error = err.Error()
		logger.Error("budget update failed", append(attrs, slog.Any("error", err))...)
		return o
	}
	o.Success = true
	logger.Info("budget updated", attrs...)
	return o
}

// Mode resolves the mode for now under the current policy.
func (r *BudgetReconciler) Mode(now time.Time) (domain.Decision, error) {
	return domain.ResolveMode(now, r.policy())
}

// State returns the persisted scheduler state.
func (r *BudgetReconciler) State(ctx context.Context) (domain.SchedulerState, error) {
	state, err := r.store.Load(ctx)
	if err != nil {
		return domain.SchedulerState{}, fmt.Errorf("%w: %w", port.ErrStateLoad, err)
	}
	return state, nil
}

// Entities lists live budget entities with their exclusion flag and stored
// original, without changing anything.
func (r *BudgetReconciler) Entities(ctx context.Context) ([]port.EntityView, error) {
	policy := r.policy()
	state, err := r.State(ctx)
	if err != nil {
		return nil, err
	}
	all, err := r.platform.ListActiveBudgetEntities(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrListEntities, err)
	}
	views := make([]port.EntityView, 0, len(all))
	for _, e := range all {
		v := port.EntityView{BudgetableEntity: e, Excluded: policy.Excludes(e)}
		if orig, ok := state.OriginalBudgets[e.ID]; ok {
			v.OriginalCents = &orig
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *BudgetReconciler) policy() domain.Policy {
	p := r.policies.Policy()
	if r.forceDryRun {
		p.DryRun = true
	}
	return p
}

func entityAttrs(e domain.BudgetableEntity) slog.Attr {
	return slog.Group("entity",
		slog.String("id", e.ID),
		slog.String("name", e.Name),
		slog.String("kind", string(e.Kind)),
	)
}
