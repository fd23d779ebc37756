package configs

import "time"

// Verify configures ownership verification fetches.
type Verify struct {
	// Timeout bounds each ads.txt fetch. One slow domain must not hold
	// up anything beyond its own verification attempt.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}
