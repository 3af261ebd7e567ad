package application

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "states.db")

	t.Run("Build then simulate from the database", func(t *testing.T) {
		// Given: build mode writing into a temporary directory
		conf := &config.Config{Mode: config.ModeBuild, DatabasePath: path}

		// When: building the database
		err := RunApp(logger, conf)
		require.NoError(t, err)

		// When: simulating with both players backed by it
		conf.Mode = config.ModeSimulate
		conf.Simulation = config.Simulation{
			Rounds:  5,
			Seed:    1,
			PlayerX: config.Player{Kind: "database"},
			PlayerO: config.Player{Kind: "random"},
		}
		err = RunApp(logger, conf)

		// Then: the run succeeds
		assert.NoError(t, err)
	})

	t.Run("Missing database", func(t *testing.T) {
		conf := &config.Config{
			Mode:         config.ModeSimulate,
			DatabasePath: filepath.Join(t.TempDir(), "missing.db"),
			Simulation: config.Simulation{
				Rounds:  1,
				PlayerX: config.Player{Kind: "minimax"},
				PlayerO: config.Player{Kind: "database"},
			},
		}

		require.Error(t, RunApp(logger, conf))
	})

	t.Run("Unknown player kind", func(t *testing.T) {
		conf := &config.Config{
			Mode: config.ModeSimulate,
			Simulation: config.Simulation{
				Rounds:  1,
				PlayerX: config.Player{Kind: "oracle"},
				PlayerO: config.Player{Kind: "random"},
			},
		}

		require.ErrorIs(t, RunApp(logger, conf), apperror.ErrUnknownPlayerKind)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		require.ErrorIs(t, RunApp(logger, &config.Config{Mode: "serve"}), config.ErrUnknownMode)
	})
}
