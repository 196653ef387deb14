package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	JobPath string // .hcl job file or directory of job files

	LogFormat string
	LogLevel  string
	Workers   int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.JobPath == "" {
		return nil, errors.New("JobPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		return nil, errors.New("Workers must be at least 1")
	}
	return &cfg, nil
}
