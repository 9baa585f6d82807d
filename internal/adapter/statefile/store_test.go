package statefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-scheduler/internal/core/domain"
)

func TestLoadMissingFileReturnsZeroState(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "state.json"))

	st, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.NewSchedulerState(), st)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s := New(path)

	at := time.Date(2026, 3, 2, 5, 0, 0, 0, time.UTC)
	in := domain.SchedulerState{
		OriginalBudgets: map[string]int64{"E1": 5000, "A1": 1200},
		LastMode:        domain.ModeNightly,
		LastRunAt:       &at,
	}
	require.NoError(t, s.Save(context.Background(), in))

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, in.OriginalBudgets, out.OriginalBudgets)
	assert.Equal(t, domain.ModeNightly, out.LastMode)
	require.NotNil(t, out.LastRunAt)
	assert.True(t, at.Equal(*out.LastRunAt))

	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "originalBudgets": {"123": 5000},
  "lastMode": null,
  "lastRunTimestamp": null
}`), 0o600))

	st, err := New(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeUnknown, st.LastMode)
	assert.Nil(t, st.LastRunAt)
	assert.Equal(t, int64(5000), st.OriginalBudgets["123"])
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	for name, content := range map[string]string{
		"not json":     `{"originalBudgets":`,
		"unknown mode": `{"lastMode": "evening"}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			_, err := New(path).Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestDoneContextSkipsIO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := New(path)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Save(ctx, domain.NewSchedulerState())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
