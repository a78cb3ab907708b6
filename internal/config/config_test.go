package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "GRADECALC_OUTPUT", "GRADECALC_COLOR", "GRADECALC_PARTIAL_MULTI", "GRADECALC_MAX_EDIT_DISTANCE"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, OutputText, cfg.Output)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.PartialMulti)
	assert.Equal(t, 1, cfg.MaxEditDistance)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GRADECALC_OUTPUT", "JSON")
	t.Setenv("GRADECALC_COLOR", "no")
	t.Setenv("GRADECALC_PARTIAL_MULTI", "0")
	t.Setenv("GRADECALC_MAX_EDIT_DISTANCE", "2")
	cfg := FromEnv()

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.False(t, cfg.Color)
	assert.False(t, cfg.PartialMulti)
	assert.Equal(t, 2, cfg.MaxEditDistance)
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("GRADECALC_OUTPUT", "xml")
	t.Setenv("GRADECALC_COLOR", "maybe")
	t.Setenv("GRADECALC_MAX_EDIT_DISTANCE", "-3")
	cfg := FromEnv()

	assert.Equal(t, OutputText, cfg.Output)
	assert.True(t, cfg.Color)
	assert.Equal(t, 1, cfg.MaxEditDistance)
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
}
