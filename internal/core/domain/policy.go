package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidPolicy   = errors.New("invalid policy")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvertedWindow  = errors.New("nightly hour must be before daytime hour")
)

// RestoreStrategy selects what an entity is restored to when entering
// daytime mode.
type RestoreStrategy string

const (
	// RestoreOriginal restores the budget captured when entering nightly mode.
	RestoreOriginal RestoreStrategy = "original"
	// RestoreFixed restores every entity to Budgets.DaytimeAmountCents.
	RestoreFixed RestoreStrategy = "fixed"
)

// Policy is the static budget policy read from the policy file. It is
// read-only for the duration of a reconcile pass.
type Policy struct {
	Timezone            string   `json:"timezone"`
	Schedule            Schedule `json:"schedule"`
	Budgets             Budgets  `json:"budgets"`
	ExcludedCampaignIDs []string `json:"excludedCampaignIds"`
	ExcludedAdsetIDs    []string `json:"excludedAdsetIds"`
	DryRun              bool     `json:"dryRun"`
}

// Schedule holds the HH:MM boundaries of the nightly window. Only the hour
// component is used for mode decisions.
type Schedule struct {
	NightlyTime string `json:"nightlyTime"`
	DaytimeTime string `json:"daytimeTime"`
}

// Budgets holds target amounts in cents.
type Budgets struct {
	NightlyAmountCents int64           `json:"nightlyAmountCents"`
	DaytimeAmountCents int64           `json:"daytimeAmountCents"`
	Restore            RestoreStrategy `json:"restore,omitempty"`
}

// DefaultPolicy returns the values applied before a policy file is decoded.
func DefaultPolicy() Policy {
	return Policy{
		Timezone: "UTC",
		Schedule: Schedule{NightlyTime: "00:00", DaytimeTime: "07:00"},
		Budgets:  Budgets{Restore: RestoreOriginal},
		DryRun:   true,
	}
}

// Validate rejects policies the reconciler cannot act on safely.
func (p Policy) Validate() error {
	if _, err := p.Location(); err != nil {
		return err
	}
	nightly, err := ParseHour(p.Schedule.NightlyTime)
	if err != nil {
		return fmt.Errorf("%w: schedule.nightlyTime: %v", ErrInvalidPolicy, err)
	}
	daytime, err := ParseHour(p.Schedule.DaytimeTime)
	if err != nil {
		return fmt.Errorf("%w: schedule.daytimeTime: %v", ErrInvalidPolicy, err)
	}
	if nightly >= daytime {
		return fmt.Errorf("%w: nightly %02d:00, daytime %02d:00", ErrInvertedWindow, nightly, daytime)
	}
	if p.Budgets.NightlyAmountCents <= 0 {
		return fmt.Errorf("%w: budgets.nightlyAmountCents must be > 0", ErrInvalidPolicy)
	}
	switch p.restore() {
	case RestoreOriginal:
	case RestoreFixed:
		if p.Budgets.DaytimeAmountCents <= 0 {
			return fmt.Errorf("%w: budgets.daytimeAmountCents must be > 0 with fixed restore", ErrInvalidPolicy)
		}
	default:
		return fmt.Errorf("%w: unknown budgets.restore %q", ErrInvalidPolicy, p.Budgets.Restore)
	}
	return nil
}

// Location loads the configured IANA zone.
func (p Policy) Location() (*time.Location, error) {
	name := strings.TrimSpace(p.Timezone)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}

// RestoreStrategy returns the effective strategy, defaulting to RestoreOriginal.
func (p Policy) RestoreStrategy() RestoreStrategy { return p.restore() }

func (p Policy) restore() RestoreStrategy {
	if p.Budgets.Restore == "" {
		return RestoreOriginal
	}
	return p.Budgets.Restore
}

// Excludes reports whether the entity must never be touched. Ad sets are
// also excluded when their parent campaign is.
func (p Policy) Excludes(e BudgetableEntity) bool {
	switch e.Kind {
	case KindCampaign:
		return contains(p.ExcludedCampaignIDs, e.ID)
	case KindAdSet:
		return contains(p.ExcludedAdsetIDs, e.ID) ||
			(e.CampaignID != "" && contains(p.ExcludedCampaignIDs, e.CampaignID))
	default:
		return false
	}
}

// ParseHour returns the hour component of an HH:MM value.
func ParseHour(hhmm string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !ok {
		return 0, fmt.Errorf("want HH:MM, got %q", hhmm)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return hour, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
