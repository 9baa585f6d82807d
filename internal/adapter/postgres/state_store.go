package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"budget-scheduler/internal/core/domain"
)

// StateStore implements port.StateStore using pgxpool for PostgreSQL. The
// singleton scheduler_state row holds the mode; original_budgets holds one
// row per entity.
type StateStore struct {
	pool   *pgxpool.Pool
	schema string
}

// NewStateStore returns a store reading the tables in schema. An empty
// schema uses the connection's search_path.
func NewStateStore(pool *pgxpool.Pool, schema string) *StateStore {
	return &StateStore{pool: pool, schema: schema}
}

// table returns the quoted, schema-qualified name of a table.
func (s *StateStore) table(name string) string {
	if s.schema == "" {
		return pq.QuoteIdentifier(name)
	}
	return pq.QuoteIdentifier(s.schema) + "." + pq.QuoteIdentifier(name)
}

// Load returns the zero state when nothing has been saved yet.
func (s *StateStore) Load(ctx context.Context) (domain.SchedulerState, error) {
	state := domain.NewSchedulerState()

	var (
		mode      string
		lastRunAt *time.Time
	)
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT last_mode, last_run_at FROM %s WHERE id = 1`, s.table("scheduler_state")),
	).Scan(&mode, &lastRunAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return domain.SchedulerState{}, err
	default:
		if state.LastMode, err = domain.ParseMode(mode); err != nil {
			return domain.SchedulerState{}, err
		}
		state.LastRunAt = lastRunAt
	}

	rows, err := s.pool.Query(ctx,
		fmt.Sprintf(`SELECT entity_id, budget_cents FROM %s`, s.table("original_budgets")),
	)
	if err != nil {
		return domain.SchedulerState{}, err
	}
	type original struct {
		ID    string
		Cents int64
	}
	originals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (original, error) {
		var o original
		err := row.Scan(&o.ID, &o.Cents)
		return o, err
	})
	if err != nil {
		return domain.SchedulerState{}, err
	}
	for _, o := range originals {
		state.OriginalBudgets[o.ID] = o.Cents
	}
	return state, nil
}

// Save replaces the stored state in a single transaction.
func (s *StateStore) Save(ctx context.Context, state domain.SchedulerState) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	mode := state.LastMode
	if mode == "" {
		mode = domain.ModeUnknown
	}
	_, err = tx.Exec(ctx, fmt.Sprintf(`
INSERT INTO %s (id, last_mode, last_run_at, updated_at)
VALUES (1, $1, $2, now())
ON CONFLICT (id) DO UPDATE
SET last_mode = EXCLUDED.last_mode, last_run_at = EXCLUDED.last_run_at, updated_at = now()`,
		s.table("scheduler_state")), string(mode), state.LastRunAt)
	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, s.table("original_budgets"))); err != nil {
		return err
	}
	if len(state.OriginalBudgets) > 0 {
		now := time.Now().UTC()
		rows := make([][]any, 0, len(state.OriginalBudgets))
		for id, cents := range state.OriginalBudgets {
			rows = append(rows, []any{id, cents, now})
		}
		_, err = tx.CopyFrom(ctx,
			s.identifier("original_budgets"),
			[]string{"entity_id", "budget_cents", "updated_at"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return err
		}
	}

	err = tx.Commit(ctx)
	return err
}

func (s *StateStore) identifier(name string) pgx.Identifier {
	if s.schema == "" {
		return pgx.Identifier{name}
	}
	return pgx.Identifier{s.schema, name}
}
