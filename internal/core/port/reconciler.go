package port

import (
	"context"
	"time"

	"budget-scheduler/internal/core/domain"
)

// Reconciler is the primary port into the budget scheduler. The CLI, the
// cron trigger and the HTTP adapter all drive it.
type Reconciler interface {
	// Reconcile evaluates the mode for now and, on a mode transition,
	// lowers or restores budgets and persists the new state. Per-entity
	// failures are reported in the Report, never returned as error.
	Reconcile(ctx context.Context, now time.Time) (*Report, error)

	// Mode resolves the mode for now without touching any state.
	Mode(now time.Time) (domain.Decision, error)

	// State returns the persisted scheduler state.
	State(ctx context.Context) (domain.SchedulerState, error)

	// Entities lists live budget entities, flagging excluded ones.
	Entities(ctx context.Context) ([]EntityView, error)
}

// PolicySource hands out the policy to use for the next pass.
type PolicySource interface {
	Policy() domain.Policy
}

// Report is the result of one reconcile pass. It is a DTO for the CLI and
// HTTP layers.
type Report struct {
	RunID        string
	Mode         domain.Mode
	PreviousMode domain.Mode
	LocalTime    string
	Transitioned bool
	DryRun       bool
	Outcomes     []Outcome
	Warnings     []Warning

	Attempted int
	Succeeded int
	Failed    int
}

// Outcome records a single budget mutation, real or simulated.
type Outcome struct {
	ID             string
	Name           string
	Kind           domain.EntityKind
	OldBudgetCents int64
	NewBudgetCents int64
	Success        bool
	DryRun         bool
	Error          string
}

// Warning records an entity that was skipped without being an error, such
// as a daytime restore with no stored original.
type Warning struct {
	ID      string
	Name    string
	Kind    domain.EntityKind
	Message string
}

// EntityView is a live entity annotated for operators.
type EntityView struct {
	domain.BudgetableEntity
	Excluded      bool
	OriginalCents *int64
}
