package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() Policy {
	p := DefaultPolicy()
	p.Timezone = "America/New_York"
	p.Schedule = Schedule{NightlyTime: "00:00", DaytimeTime: "07:00"}
	p.Budgets.NightlyAmountCents = 1000
	return p
}

func TestResolveMode(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	cases := []struct {
		name  string
		local time.Time
		want  Mode
		clock string
	}{
		{"midnight is nightly", time.Date(2026, 3, 2, 0, 0, 0, 0, loc), ModeNightly, "00:00"},
		{"minutes ignored inside window", time.Date(2026, 3, 2, 6, 59, 0, 0, loc), ModeNightly, "06:59"},
		{"daytime hour is exclusive", time.Date(2026, 3, 2, 7, 0, 0, 0, loc), ModeDaytime, "07:00"},
		{"evening", time.Date(2026, 3, 2, 23, 30, 0, 0, loc), ModeDaytime, "23:30"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// feed UTC to make sure the zone conversion happens
			d, err := ResolveMode(tc.local.UTC(), testPolicy())
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.Mode)
			assert.Equal(t, tc.clock, d.LocalTime)
		})
	}
}

func TestResolveModeRejectsBadPolicy(t *testing.T) {
	p := testPolicy()
	p.Timezone = "Mars/Olympus"
	_, err := ResolveMode(time.Now(), p)
	assert.True(t, errors.Is(err, ErrInvalidTimezone))

	p = testPolicy()
	p.Schedule = Schedule{NightlyTime: "22:00", DaytimeTime: "06:00"}
	_, err = ResolveMode(time.Now(), p)
	assert.True(t, errors.Is(err, ErrInvertedWindow))
}

func TestPolicyValidate(t *testing.T) {
	require.NoError(t, testPolicy().Validate())

	equal := testPolicy()
	equal.Schedule = Schedule{NightlyTime: "05:00", DaytimeTime: "05:30"}
	assert.ErrorIs(t, equal.Validate(), ErrInvertedWindow)

	badTime := testPolicy()
	badTime.Schedule.NightlyTime = "25:00"
	assert.ErrorIs(t, badTime.Validate(), ErrInvalidPolicy)

	noAmount := testPolicy()
	noAmount.Budgets.NightlyAmountCents = 0
	assert.ErrorIs(t, noAmount.Validate(), ErrInvalidPolicy)

	fixed := testPolicy()
	fixed.Budgets.Restore = RestoreFixed
	assert.ErrorIs(t, fixed.Validate(), ErrInvalidPolicy)
	fixed.Budgets.DaytimeAmountCents = 5000
	assert.NoError(t, fixed.Validate())

	unknown := testPolicy()
	unknown.Budgets.Restore = "sometimes"
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidPolicy)
}

func TestPolicyExcludes(t *testing.T) {
	p := testPolicy()
	p.ExcludedCampaignIDs = []string{"c1"}
	p.ExcludedAdsetIDs = []string{"a9"}

	assert.True(t, p.Excludes(BudgetableEntity{ID: "c1", Kind: KindCampaign, CampaignID: "c1"}))
	assert.False(t, p.Excludes(BudgetableEntity{ID: "c2", Kind: KindCampaign, CampaignID: "c2"}))
	assert.True(t, p.Excludes(BudgetableEntity{ID: "a9", Kind: KindAdSet, CampaignID: "c2"}))
	assert.True(t, p.Excludes(BudgetableEntity{ID: "a1", Kind: KindAdSet, CampaignID: "c1"}), "adset of excluded campaign")
	assert.False(t, p.Excludes(BudgetableEntity{ID: "a2", Kind: KindAdSet, CampaignID: "c2"}))
}

func TestParseHour(t *testing.T) {
	h, err := ParseHour("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, h)

	for _, bad := range []string{"", "7", "aa:00", "12:60", "-1:00"} {
		_, err := ParseHour(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeUnknown, m)

	m, err = ParseMode("nightly")
	require.NoError(t, err)
	assert.Equal(t, ModeNightly, m)

	_, err = ParseMode("dusk")
	assert.Error(t, err)
}

func TestSchedulerStateClone(t *testing.T) {
	now := time.Now()
	s := SchedulerState{OriginalBudgets: map[string]int64{"E1": 5000}, LastMode: ModeNightly, LastRunAt: &now}
	cp := s.Clone()
	cp.OriginalBudgets["E1"] = 1
	*cp.LastRunAt = now.Add(time.Hour)

	assert.Equal(t, int64(5000), s.OriginalBudgets["E1"])
	assert.Equal(t, now, *s.LastRunAt)
}
