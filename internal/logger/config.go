package logger

import (
	"os"
	"strings"
)

// ConfigFromEnv builds a logger config from environment variables.
func ConfigFromEnv() *Config {
	config := &Config{
		Level:  "info",
		Format: "text",
	}

	if isTrue(os.Getenv("DEBUG")) {
		config.Level = "debug"
	}

	// LOG_LEVEL takes precedence over DEBUG
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}

	return config
}

// NewFromEnv creates a logger configured from environment variables.
func NewFromEnv() (Logger, error) {
	config := ConfigFromEnv()
	return New(
		WithLevel(config.Level),
		WithFormat(config.Format),
	)
}

// isTrue checks whether the string represents a truthy value.
func isTrue(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
