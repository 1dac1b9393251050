// internal/workers/matching/bulk-match/config.go
package bulkmatch

import "time"

type Config struct {
	// Timeout bounds a full cross-product run; bulk runs get a longer
	// budget than the single-entity workers.
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Minute,
	}
}
