// Package sqlite persists SchedulerState in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"budget-scheduler/internal/core/domain"
)

//go:embed schema.sql
var schema string

// Store implements port.StateStore.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode = WAL", "PRAGMA busy_timeout = 5000"} {
		if _, err = db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context) (domain.SchedulerState, error) {
	state := domain.NewSchedulerState()

	var (
		mode      string
		lastRunAt sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `SELECT last_mode, last_run_at FROM scheduler_state WHERE id = 1`).
		Scan(&mode, &lastRunAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return domain.SchedulerState{}, err
	default:
		if state.LastMode, err = domain.ParseMode(mode); err != nil {
			return domain.SchedulerState{}, err
		}
		if lastRunAt.Valid {
			t, perr := time.Parse(time.RFC3339Nano, lastRunAt.String)
			if perr != nil {
				return domain.SchedulerState{}, perr
			}
			state.LastRunAt = &t
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT entity_id, budget_cents FROM original_budgets`)
	if err != nil {
		return domain.SchedulerState{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id    string
			cents int64
		)
		if err = rows.Scan(&id, &cents); err != nil {
			return domain.SchedulerState{}, err
		}
		state.OriginalBudgets[id] = cents
	}
	if err = rows.Err(); err != nil {
		return domain.SchedulerState{}, err
	}
	return state, nil
}

// Save replaces the stored state in one transaction.
func (s *Store) Save(ctx context.Context, state domain.SchedulerState) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	mode := state.LastMode
	if mode == "" {
		mode = domain.ModeUnknown
	}
	var lastRunAt sql.NullString
	if state.LastRunAt != nil {
		lastRunAt = sql.NullString{String: state.LastRunAt.UTC().Format(time.RFC3339Nano), Valid: true}
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO scheduler_state(id, last_mode, last_run_at) VALUES(1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET last_mode = excluded.last_mode, last_run_at = excluded.last_run_at`,
		string(mode), lastRunAt,
	); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM original_budgets`); err != nil {
		return err
	}
	if len(state.OriginalBudgets) > 0 {
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx, `INSERT INTO original_budgets(entity_id, budget_cents) VALUES(?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for id, cents := range state.OriginalBudgets {
			if _, err = stmt.ExecContext(ctx, id, cents); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}
