// internal/workers/data-access/search-records/config.go
package searchrecords

import "time"

type Config struct {
	JobsIndex       string
	CandidatesIndex string
	DefaultSize     int
	Timeout         time.Duration
}

func LoadConfig() *Config {
	return &Config{
		JobsIndex:       "jobs",
		CandidatesIndex: "candidates",
		DefaultSize:     20,
		Timeout:         15 * time.Second,
	}
}
