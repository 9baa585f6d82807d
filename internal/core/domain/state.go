package domain

import "time"

// SchedulerState is the durable memory of the reconciler. OriginalBudgets
// maps entity id to the last observed daytime budget in cents. Entries are
// added when entering nightly mode and are never removed automatically.
type SchedulerState struct {
	OriginalBudgets map[string]int64
	LastMode        Mode
	LastRunAt       *time.Time
}

// NewSchedulerState returns the state of a first-ever run.
func NewSchedulerState() SchedulerState {
	return SchedulerState{
		OriginalBudgets: map[string]int64{},
		LastMode:        ModeUnknown,
	}
}

// Clone returns a deep copy so callers can mutate it freely.
func (s SchedulerState) Clone() SchedulerState {
	cp := SchedulerState{
		OriginalBudgets: make(map[string]int64, len(s.OriginalBudgets)),
		LastMode:        s.LastMode,
	}
	for k, v := range s.OriginalBudgets {
		cp.OriginalBudgets[k] = v
	}
	if s.LastRunAt != nil {
		t := *s.LastRunAt
		cp.LastRunAt = &t
	}
	if cp.LastMode == "" {
		cp.LastMode = ModeUnknown
	}
	return cp
}
