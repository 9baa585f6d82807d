package configs

import "time"

// Meta configures the Marketing (Graph) API client.
type Meta struct {
	AccessToken string `env:"ACCESS_TOKEN"`
	// AdAccountID may be given with or without the "act_" prefix.
	AdAccountID string        `env:"AD_ACCOUNT_ID"`
	APIVersion  string        `env:"API_VERSION" envDefault:"v21.0"`
	BaseURL     string        `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// RatePerSec bounds outgoing requests per second.
	RatePerSec float64 `env:"RATE_PER_SEC" envDefault:"5"`
	PageLimit  int     `env:"PAGE_LIMIT" envDefault:"100"`
}
