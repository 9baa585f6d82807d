package config

import (
	"github.com/caarlos0/env/v11"

	"budget-scheduler/internal/config/configs"
)

// Config aggregates all process configuration sections. Fields are
// populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. The budget policy itself lives in a separate file
// pointed to by PolicyPath; see the policy package.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// PolicyPath is the JSON or YAML budget policy file.
	PolicyPath string `env:"POLICY_PATH" envDefault:"config.json"`

	// HTTP holds configuration for the status API served by `serve`.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection used by the postgres state
	// driver.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Meta configures the Marketing API client.
	Meta configs.Meta `envPrefix:"META_"`

	// State selects and configures the state store.
	State configs.State `envPrefix:"STATE_"`

	// Scheduler configures the daemon trigger and the mutation pool.
	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFromMap parses configuration from the given variables instead of the
// process environment.
func loadFromMap(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return cfg, err
	}
	return cfg, nil
}
