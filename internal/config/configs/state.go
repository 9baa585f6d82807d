package configs

import (
	"fmt"
	"strings"
)

// State drivers.
const (
	StateDriverFile     = "file"
	StateDriverPostgres = "postgres"
	StateDriverSQLite   = "sqlite"
)

// State selects where SchedulerState is persisted. Path is the JSON file
// for the file driver and the database file for the sqlite driver.
type State struct {
	Driver string `env:"DRIVER" envDefault:"file"`
	Path   string `env:"PATH" envDefault:"scheduler_state.json"`
}

// NormalizedDriver returns the lower-cased driver or an error for unknown
// values.
func (c State) NormalizedDriver() (string, error) {
	d := strings.ToLower(strings.TrimSpace(c.Driver))
	switch d {
	case StateDriverFile, StateDriverPostgres, StateDriverSQLite:
		return d, nil
	case "":
		return StateDriverFile, nil
	default:
		return "", fmt.Errorf("unknown state driver %q", c.Driver)
	}
}
