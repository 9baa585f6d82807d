// Package statefile persists SchedulerState as a single JSON document.
package statefile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"budget-scheduler/internal/core/domain"
)

// document is the on-disk layout.
type document struct {
	OriginalBudgets  map[string]int64 `json:"originalBudgets"`
	LastMode         *string          `json:"lastMode"`
	LastRunTimestamp *time.Time       `json:"lastRunTimestamp"`
}

// Store implements port.StateStore on top of a JSON file. Saves replace the
// file atomically through a temporary file and rename.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the zero state when the file does not exist yet.
func (s *Store) Load(ctx context.Context) (domain.SchedulerState, error) {
	if err := ctx.Err(); err != nil {
		return domain.SchedulerState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewSchedulerState(), nil
	}
	if err != nil {
		return domain.SchedulerState{}, err
	}

	var doc document
	if err = json.Unmarshal(b, &doc); err != nil {
		return domain.SchedulerState{}, fmt.Errorf("decode %s: %w", s.path, err)
	}

	state := domain.NewSchedulerState()
	for k, v := range doc.OriginalBudgets {
		state.OriginalBudgets[k] = v
	}
	if doc.LastMode != nil {
		if state.LastMode, err = domain.ParseMode(*doc.LastMode); err != nil {
			return domain.SchedulerState{}, fmt.Errorf("decode %s: %w", s.path, err)
		}
	}
	if doc.LastRunTimestamp != nil {
		t := *doc.LastRunTimestamp
		state.LastRunAt = &t
	}
	return state, nil
}

// Save returns early when ctx is already done, leaving the file untouched.
func (s *Store) Save(ctx context.Context, state domain.SchedulerState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	mode := string(state.LastMode)
	if state.LastMode == "" {
		mode = string(domain.ModeUnknown)
	}
	doc := document{
		OriginalBudgets:  state.OriginalBudgets,
		LastMode:         &mode,
		LastRunTimestamp: state.LastRunAt,
	}
	if doc.OriginalBudgets == nil {
		doc.OriginalBudgets = map[string]int64{}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err = enc.Encode(doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, s.path)
}
