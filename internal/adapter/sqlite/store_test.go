package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-scheduler/internal/core/domain"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "scheduler.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestEmptyDatabaseLoadsZeroState(t *testing.T) {
	s, _ := openTemp(t)

	st, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.NewSchedulerState(), st)
}

func TestSaveReplacesState(t *testing.T) {
	s, path := openTemp(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 2, 5, 0, 0, 0, time.UTC)
	require.NoError(t, s.Save(ctx, domain.SchedulerState{
		OriginalBudgets: map[string]int64{"E1": 5000, "A1": 700},
		LastMode:        domain.ModeNightly,
		LastRunAt:       &at,
	}))
	require.NoError(t, s.Save(ctx, domain.SchedulerState{
		OriginalBudgets: map[string]int64{"E1": 6000},
		LastMode:        domain.ModeDaytime,
		LastRunAt:       &at,
	}))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	st, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"E1": 6000}, st.OriginalBudgets)
	assert.Equal(t, domain.ModeDaytime, st.LastMode)
	require.NotNil(t, st.LastRunAt)
	assert.True(t, at.Equal(*st.LastRunAt))
}

func TestOpenEnablesWALAndBusyTimeout(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()

	var mode string
	require.NoError(t, s.db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, s.db.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestOpenRejectsDoneContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, filepath.Join(t.TempDir(), "scheduler.db"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), " ")
	assert.Error(t, err)
}
