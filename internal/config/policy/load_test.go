package policy

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

const jsonPolicy = `{
  "timezone": "America/New_York",
  "schedule": {"nightlyTime": "00:00", "daytimeTime": "07:00"},
  "budgets": {"nightlyAmountCents": 1000},
  "excludedCampaignIds": ["C1"],
  "dryRun": false
}`

const yamlPolicy = `
timezone: Europe/Berlin
schedule:
  nightlyTime: "01:00"
  daytimeTime: "06:30"
budgets:
  nightlyAmountCents: 500
  daytimeAmountCents: 9000
  restore: fixed
excludedAdsetIds: [A1, A2]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadJSON(t *testing.T) {
	p, err := Load(writeFile(t, "config.json", jsonPolicy))
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", p.Timezone)
	assert.Equal(t, int64(1000), p.Budgets.NightlyAmountCents)
	assert.Equal(t, domain.RestoreOriginal, p.RestoreStrategy())
	assert.Equal(t, []string{"C1"}, p.ExcludedCampaignIDs)
	assert.False(t, p.DryRun)
}

func TestLoadYAML(t *testing.T) {
	p, err := Load(writeFile(t, "policy.yaml", yamlPolicy))
	require.NoError(t, err)

	assert.Equal(t, "Europe/Berlin", p.Timezone)
	assert.Equal(t, "06:30", p.Schedule.DaytimeTime)
	assert.Equal(t, domain.RestoreFixed, p.RestoreStrategy())
	assert.Equal(t, int64(9000), p.Budgets.DaytimeAmountCents)
	assert.Equal(t, []string{"A1", "A2"}, p.ExcludedAdsetIDs)
	assert.True(t, p.DryRun, "dryRun defaults to true when omitted")
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown field",
			content: `{"budgets": {"nightlyAmountCents": 1000}, "nightlyBudget": 5}`,
			wantErr: domain.ErrInvalidPolicy,
		},
		{
			name:    "trailing data",
			content: `{"budgets": {"nightlyAmountCents": 1000}} {}`,
			wantErr: domain.ErrInvalidPolicy,
		},
		{
			name:    "missing nightly amount",
			content: `{}`,
			wantErr: domain.ErrInvalidPolicy,
		},
		{
			name:    "inverted window",
			content: `{"schedule": {"nightlyTime": "22:00", "daytimeTime": "06:00"}, "budgets": {"nightlyAmountCents": 1000}}`,
			wantErr: domain.ErrInvertedWindow,
		},
		{
			name:    "bad timezone",
			content: `{"timezone": "Mars/Olympus", "budgets": {"nightlyAmountCents": 1000}}`,
			wantErr: domain.ErrInvalidTimezone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("config.json", []byte(tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStatic(t *testing.T) {
	p := domain.DefaultPolicy()
	p.Budgets.NightlyAmountCents = 42
	assert.Equal(t, p, NewStatic(p).Policy())
}

func TestWatcherReload(t *testing.T) {
	path := writeFile(t, "config.json", jsonPolicy)
	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	var seen []domain.Policy
	w.OnChange(func(p domain.Policy) { seen = append(seen, p) })

	changed, err := w.Reload()
	require.NoError(t, err)
	assert.False(t, changed, "unchanged content is not republished")

	require.NoError(t, os.WriteFile(path, []byte(`{"budgets": {"nightlyAmountCents": 250}}`), 0o600))
	changed, err = w.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, int64(250), w.Policy().Budgets.NightlyAmountCents)
	require.Len(t, seen, 1)

	require.NoError(t, os.WriteFile(path, []byte(`{"budgets": {"nightlyAmountCents": -1}}`), 0o600))
	_, err = w.Reload()
	assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
	assert.Equal(t, int64(250), w.Policy().Budgets.NightlyAmountCents, "last good policy is kept")
}

func TestWatcherPicksUpEdits(t *testing.T) {
	path := writeFile(t, "config.json", jsonPolicy)
	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"budgets": {"nightlyAmountCents": 777}}`), 0o600))

	require.Eventually(t, func() bool {
		return w.Policy().Budgets.NightlyAmountCents == 777
	}, 2*time.Second, 20*time.Millisecond)
}
