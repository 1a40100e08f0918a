// Package config loads the desired label set, alias mappings, and runtime
// settings from a configuration file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/keptn-contrib/gh-label-sync/internal/label"
)

// Matching strategy names accepted in configuration.
const (
	StrategyIdentity    = "identity"
	StrategyStripPrefix = "strip-prefix"
	StrategyMappings    = "mappings"
)

// Config is the application configuration.
type Config struct {
	GitHub  GitHubConfig        `mapstructure:"github"`
	Labels  []label.Label       `mapstructure:"labels"`
	Aliases map[string][]string `mapstructure:"aliases"`
	Sync    SyncConfig          `mapstructure:"sync"`
}

// GitHubConfig holds GitHub API settings.
type GitHubConfig struct {
	Token string      `mapstructure:"token"`
	Retry RetryConfig `mapstructure:"retry"`
}

// RetryConfig tunes the API client's retry behavior. MaxAttempts 1 disables
// retries.
type RetryConfig struct {
	MaxAttempts  int           `mapstructure:"max_attempts"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	MaxDelay     time.Duration `mapstructure:"max_delay"`
}

// SyncConfig holds sync behavior settings.
type SyncConfig struct {
	// Strategy selects how existing label names are matched onto desired
	// ones: identity, strip-prefix, or mappings.
	Strategy string `mapstructure:"strategy"`
	// OutputDir is where dry-run plan files are written.
	OutputDir string `mapstructure:"output_dir"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Retry: RetryConfig{
				MaxAttempts:  3,
				InitialDelay: 1 * time.Second,
				MaxDelay:     30 * time.Second,
			},
		},
		Sync: SyncConfig{
			Strategy:  StrategyMappings,
			OutputDir: ".",
		},
	}
}

// Load reads the configuration file (YAML or JSON, decided by extension) and
// environment variables into c.
func (c *Config) Load(configPath string) error {
	v := viper.New()

	v.SetConfigFile(configPath)

	v.SetEnvPrefix("GLS")
	v.AutomaticEnv()

	// GITHUB_TOKEN is also honored
	v.BindEnv("github.token", "GITHUB_TOKEN", "GLS_GITHUB_TOKEN")

	v.SetDefault("github.retry.max_attempts", 3)
	v.SetDefault("github.retry.initial_delay", 1*time.Second)
	v.SetDefault("github.retry.max_delay", 30*time.Second)
	v.SetDefault("sync.strategy", StrategyMappings)
	v.SetDefault("sync.output_dir", ".")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	if err := v.Unmarshal(c); err != nil {
		return err
	}

	return nil
}

// Validate checks the configuration and backfills missing defaults.
func (c *Config) Validate() error {
	if len(c.Labels) == 0 {
		return errors.New("at least one desired label is required")
	}
	for i, l := range c.Labels {
		if l.Name == "" {
			return fmt.Errorf("label at index %d has an empty name", i)
		}
		if l.Color == "" {
			return fmt.Errorf("label %q has an empty color", l.Name)
		}
	}

	if c.Sync.Strategy == "" {
		c.Sync.Strategy = StrategyMappings
	}
	switch c.Sync.Strategy {
	case StrategyIdentity, StrategyStripPrefix, StrategyMappings:
	default:
		return fmt.Errorf("unknown matching strategy: %s", c.Sync.Strategy)
	}

	if c.Sync.OutputDir == "" {
		c.Sync.OutputDir = "."
	}
	if c.GitHub.Retry.MaxAttempts < 1 {
		c.GitHub.Retry.MaxAttempts = 1
	}

	return nil
}

// Generator builds the candidate name generator selected by the matching
// strategy.
func (c *Config) Generator() label.CandidateNameGenerator {
	switch c.Sync.Strategy {
	case StrategyIdentity:
		return label.IdentityGenerator{}
	case StrategyStripPrefix:
		return label.StripPrefixGenerator{}
	default:
		return label.NewMappingsGenerator(c.Aliases)
	}
}

// GetGitHubToken returns the GitHub token and where it came from, preferring
// the explicit configuration over the environment.
func GetGitHubToken(cfg *Config) (token, source string) {
	if cfg != nil && cfg.GitHub.Token != "" {
		return cfg.GitHub.Token, "config"
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, "GITHUB_TOKEN"
	}
	if token := os.Getenv("GLS_GITHUB_TOKEN"); token != "" {
		return token, "GLS_GITHUB_TOKEN"
	}
	return "", ""
}
