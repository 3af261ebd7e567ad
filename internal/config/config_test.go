package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file that only sets the mode
		path := writeConfig(t, "mode: build\n")

		// When: loading it
		conf, err := Load(path)

		// Then: everything else has its default
		require.NoError(t, err)
		assert.Equal(t, ModeBuild, conf.Mode)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "states.db", conf.DatabasePath)
		assert.Equal(t, 1000, conf.Simulation.Rounds)
		assert.Equal(t, "minimax", conf.Simulation.PlayerX.Kind)
		assert.False(t, conf.Simulation.PlayerO.DisablePruning)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads nested players", func(t *testing.T) {
		path := writeConfig(t, `
simulation:
  rounds: 10
  player-x:
    kind: database
  player-o:
    kind: random
    disable-depth: true
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, ModeSimulate, conf.Mode)
		assert.Equal(t, 10, conf.Simulation.Rounds)
		assert.Equal(t, "database", conf.Simulation.PlayerX.Kind)
		assert.Equal(t, "random", conf.Simulation.PlayerO.Kind)
		assert.True(t, conf.Simulation.PlayerO.DisableDepth)
		assert.False(t, conf.Simulation.PlayerX.DisableDepth)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("DATABASE_PATH", "/tmp/other.db")
		path := writeConfig(t, "database-path: states.db\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/other.db", conf.DatabasePath)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		path := writeConfig(t, "mode: serve\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("Missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
