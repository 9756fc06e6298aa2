package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() map[string]any {
	return map[string]any{
		KeyTimeout:   "0s",
		KeyOutput:    "text",
		KeyLogLevel:  "warn",
		KeyLogFormat: "text",
	}
}

func TestLoadDefaults(t *testing.T) {
	v := NewViper()
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}

	cfg, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, Config{Output: "text", LogLevel: "warn", LogFormat: "text"}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONNDIAG_TIMEOUT", "3s")
	t.Setenv("CONNDIAG_OUTPUT", "JSON")
	t.Setenv("CONNDIAG_NO_COLOR", "true")
	t.Setenv("CONNDIAG_EXIT_CODE", "1")
	v := NewViper()
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}

	cfg, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.ExitCode)
	assert.False(t, cfg.Interactive)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]any{
		KeyTimeout:   "-5s",
		KeyOutput:    "xml",
		KeyLogFormat: "logfmt",
	}

	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			v := NewViper()
			for k, d := range defaults() {
				v.SetDefault(k, d)
			}
			v.Set(key, val)

			_, err := Load(v)

			assert.ErrorContains(t, err, key)
		})
	}
}
