package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{name: "defaults", opts: nil},
		{name: "debug json", opts: []Option{WithLevel("debug"), WithFormat("json")}},
		{name: "invalid level", opts: []Option{WithLevel("loud")}, wantErr: true},
		{name: "invalid format", opts: []Option{WithFormat("xml")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.opts...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestLogger_SanitizesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := newLoggerWithCore(core)

	log.Info("authenticated", "token", "super-secret", "repo", "keptn/keptn")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, mask, fields["token"])
	assert.Equal(t, "keptn/keptn", fields["repo"])
}

func TestLogger_WithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := newLoggerWithCore(core)

	log.WithFields("repo", "keptn/keptn").Warn("label missing", "name", "bug")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "keptn/keptn", fields["repo"])
	assert.Equal(t, "bug", fields["name"])
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")
		cfg := ConfigFromEnv()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "text", cfg.Format)
	})

	t.Run("DEBUG enables debug level", func(t *testing.T) {
		t.Setenv("DEBUG", "true")
		t.Setenv("LOG_LEVEL", "")
		assert.Equal(t, "debug", ConfigFromEnv().Level)
	})

	t.Run("LOG_LEVEL overrides DEBUG", func(t *testing.T) {
		t.Setenv("DEBUG", "true")
		t.Setenv("LOG_LEVEL", "WARN")
		assert.Equal(t, "warn", ConfigFromEnv().Level)
	})

	t.Run("LOG_FORMAT", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "JSON")
		assert.Equal(t, "json", ConfigFromEnv().Format)
	})
}
