package domain

import "fmt"

// Mode is the budget regime the scheduler is in.
type Mode string

const (
	ModeUnknown Mode = "unknown"
	ModeNightly Mode = "nightly"
	ModeDaytime Mode = "daytime"
)

// ParseMode converts a stored mode string. Empty input is ModeUnknown.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeUnknown:
		return ModeUnknown, nil
	case ModeNightly:
		return ModeNightly, nil
	case ModeDaytime:
		return ModeDaytime, nil
	default:
		return ModeUnknown, fmt.Errorf("unknown mode %q", s)
	}
}
