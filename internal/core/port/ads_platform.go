package port

import (
	"context"
	"errors"

	"budget-scheduler/internal/core/domain"
)

// ErrListEntities marks a failure to enumerate live entities. It is fatal
// for a reconcile pass: diffing needs the complete live set.
var ErrListEntities = errors.New("list active budget entities")

// AdsPlatform is the outbound port to the advertising platform. It is a
// capability object: callers construct it explicitly and pass it in.
// Implementations must be safe for concurrent SetBudget calls.
type AdsPlatform interface {
	// ListActiveBudgetEntities returns every active campaign that owns a
	// daily budget and every active ad set carrying its own daily budget
	// under a campaign that does not. Exclusions are not applied.
	ListActiveBudgetEntities(ctx context.Context) ([]domain.BudgetableEntity, error)

	// SetBudget sets the daily budget of a single entity. It is idempotent;
	// an error only concerns that entity.
	SetBudget(ctx context.Context, id string, kind domain.EntityKind, amountCents int64) error
}
