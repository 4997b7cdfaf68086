package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_AcceptsEmptySweepPath(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{})

	require.NoError(t, err)
	assert.Empty(t, cfg.SweepPath)
}

func TestNewConfig_RejectsInvalidLogSettings(t *testing.T) {
	t.Parallel()

	t.Run("format", func(t *testing.T) {
		_, err := NewConfig(Config{LogFormat: "xml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogFormat")
	})

	t.Run("level", func(t *testing.T) {
		_, err := NewConfig(Config{LogLevel: "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogLevel")
	})
}
