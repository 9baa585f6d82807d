package port

import (
	"context"
	"errors"

	"budget-scheduler/internal/core/domain"
)

var (
	ErrStateLoad = errors.New("load scheduler state")
	ErrStateSave = errors.New("save scheduler state")
)

// StateStore persists the SchedulerState between runs. Save always writes
// the whole structure atomically; a crash mid-write must leave the previous
// state readable.
type StateStore interface {
	// Load returns the stored state, or domain.NewSchedulerState() when
	// nothing has been stored yet.
	Load(ctx context.Context) (domain.SchedulerState, error)
	// Save replaces the stored state.
	Save(ctx context.Context, state domain.SchedulerState) error
}
