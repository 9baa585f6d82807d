package trigger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budget-scheduler/internal/core/domain"
	"budget-scheduler/internal/core/port"
	"budget-scheduler/internal/core/port/mocks"
)

func TestNewCronRejectsBadSpec(t *testing.T) {
	_, err := NewCron(mocks.NewMockReconciler(t), "every hour", false, nil)
	assert.Error(t, err)

	_, err = NewCron(mocks.NewMockReconciler(t), "*/5 * * * * *", false, nil)
	assert.Error(t, err, "seconds field is not accepted")
}

func TestRunOnce(t *testing.T) {
	rec := mocks.NewMockReconciler(t)
	now := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)

	rec.EXPECT().Reconcile(mock.Anything, now).Return(&port.Report{RunID: "r", Mode: domain.ModeNightly}, nil).Once()
	rec.EXPECT().Reconcile(mock.Anything, now).Return(nil, errors.New("boom")).Once()

	tr, err := NewCron(rec, "0 * * * *", false, nil)
	require.NoError(t, err)
	tr.now = func() time.Time { return now }

	tr.RunOnce(context.Background())
	tr.RunOnce(context.Background())
}

func TestRunOnceSkipsCancelledContext(t *testing.T) {
	rec := mocks.NewMockReconciler(t)
	tr, err := NewCron(rec, "@hourly", false, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr.RunOnce(ctx)
}

func TestStartRunsOnStart(t *testing.T) {
	rec := mocks.NewMockReconciler(t)
	called := make(chan struct{}, 1)
	rec.EXPECT().Reconcile(mock.Anything, mock.Anything).
		Run(func(context.Context, time.Time) { called <- struct{}{} }).
		Return(&port.Report{}, nil).
		Once()

	tr, err := NewCron(rec, "0 0 1 1 *", true, nil)
	require.NoError(t, err)

	require.NoError(t, tr.Start(context.Background(), time.UTC))
	t.Cleanup(tr.Stop)

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("reconcile was not run on start")
	}
	assert.Error(t, tr.Start(context.Background(), time.UTC))
}

func TestSetLocationRestartsSchedule(t *testing.T) {
	tr, err := NewCron(mocks.NewMockReconciler(t), "0 * * * *", false, nil)
	require.NoError(t, err)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	require.NoError(t, tr.SetLocation(ny), "no-op while stopped")
	require.NoError(t, tr.Start(context.Background(), time.UTC))
	t.Cleanup(tr.Stop)

	require.NoError(t, tr.SetLocation(ny))
	tr.mu.Lock()
	assert.Equal(t, "America/New_York", tr.loc.String())
	assert.NotNil(t, tr.c)
	tr.mu.Unlock()
}
