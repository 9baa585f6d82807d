package domain

import (
	"fmt"
	"time"
)

// Decision is the output of ResolveMode.
type Decision struct {
	Mode      Mode
	LocalTime string
	Location  *time.Location
}

// ResolveMode maps an instant to a mode using the policy's timezone and
// schedule. Only the hour is compared: the nightly window is the half-open
// range [nightlyHour, daytimeHour) and every other hour is daytime.
func ResolveMode(now time.Time, p Policy) (Decision, error) {
	loc, err := p.Location()
	if err != nil {
		return Decision{}, err
	}
	nightly, err := ParseHour(p.Schedule.NightlyTime)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: schedule.nightlyTime: %v", ErrInvalidPolicy, err)
	}
	daytime, err := ParseHour(p.Schedule.DaytimeTime)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: schedule.daytimeTime: %v", ErrInvalidPolicy, err)
	}
	if nightly >= daytime {
		return Decision{}, ErrInvertedWindow
	}

	local := now.In(loc)
	mode := ModeDaytime
	if h := local.Hour(); nightly <= h && h < daytime {
		mode = ModeNightly
	}
	return Decision{Mode: mode, LocalTime: local.Format("15:04"), Location: loc}, nil
}
