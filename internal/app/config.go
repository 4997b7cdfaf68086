package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SweepPath  string // optional .hcl sweep file or directory
	OutputPath string // overrides the sweep's output path when non-empty

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. An empty SweepPath is valid: the built-in
// production sweep is used.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid LogFormat %q", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LogLevel %q", cfg.LogLevel)
	}

	return &cfg, nil
}
