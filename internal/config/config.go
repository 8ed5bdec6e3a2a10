// Package config loads the bmireduce command configuration.
//
// Values come from environment variables with defaults; command-line flags
// override the environment and the positional worker counts override both.
//
// Environment Variables:
//   - BMI_PATH, BMI_THREADS, BMI_PROCESSES, BMI_RUNS, BMI_PLAN_POLICY
//   - LOG_LEVEL, LOG_DEV
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"pkg.jsn.cam/bmireduce/internal/logging"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce"
)

var ErrInvalidRuns = errors.New("runs must be at least 1")

// Config holds all command configuration.
type Config struct {
	Path      string `envconfig:"BMI_PATH" default:"bmi.csv"`
	Threads   int    `envconfig:"BMI_THREADS" default:"4"`
	Processes int    `envconfig:"BMI_PROCESSES" default:"4"`
	Runs      int    `envconfig:"BMI_RUNS" default:"1"`
	Policy    string `envconfig:"BMI_PLAN_POLICY" default:"last"`
	Logging   LogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Path:      "bmi.csv",
		Threads:   4,
		Processes: 4,
		Runs:      1,
		Policy:    "last",
		Logging: LogConfig{
			Level: "warn",
		},
	}
}

// ApplyArgs sets the worker counts from positional arguments: the first is
// the thread count, the second the process count. Arguments are read like
// C's atoi, so a non-numeric argument becomes 0.
func (c *Config) ApplyArgs(args []string) {
	if len(args) > 0 {
		c.Threads = Atoi(args[0])
	}
	if len(args) > 1 {
		c.Processes = Atoi(args[1])
	}
}

// Validate checks the fields the reducers do not check themselves. Worker
// counts are left to the reducers.
func (c *Config) Validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRuns, c.Runs)
	}
	if _, err := bmireduce.ParsePolicy(c.Policy); err != nil {
		return err
	}
	return nil
}

// PlanPolicy returns the parsed partition policy.
func (c *Config) PlanPolicy() bmireduce.Policy {
	p, err := bmireduce.ParsePolicy(c.Policy)
	if err != nil {
		return bmireduce.PolicyLastWorker
	}
	return p
}

// Logger returns the logging configuration.
func (c *Config) Logger() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Development = c.Logging.Development
	return cfg
}

// Atoi parses the leading decimal integer of s, after optional blanks and a
// sign. It returns 0 when there is none.
func Atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
