package configs

// Scheduler configures the `serve` daemon. Cron is a standard five-field
// expression evaluated in the policy timezone.
type Scheduler struct {
	Cron        string `env:"CRON" envDefault:"0 * * * *"`
	Concurrency int    `env:"CONCURRENCY" envDefault:"4"`
	RunOnStart  bool   `env:"RUN_ON_START" envDefault:"true"`
}
