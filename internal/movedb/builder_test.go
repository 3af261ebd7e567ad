package movedb

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ongoingPositions returns every non-terminal position reachable from the empty board with the side to move.
func ongoingPositions() map[entity.Board]entity.Player {
	positions := make(map[entity.Board]entity.Player)

	var walk func(board entity.Board, turn entity.Player)
	walk = func(board entity.Board, turn entity.Player) {
		status := board.Evaluate()
		if !status.IsOngoing() {
			return
		}
		if _, ok := positions[board]; ok {
			return
		}
		positions[board] = turn

		for _, move := range status.AllowedMoves {
			next := board
			next.ApplyMove(move, turn)
			walk(next, turn.Opponent())
		}
	}
	walk(entity.NewGame(), entity.PlayerX)

	return positions
}

func TestBuild(t *testing.T) {
	// When: building the database
	records := Build(discardLogger())

	// Then: records are sorted, unique and fit into 3 bytes
	require.NotEmpty(t, records)
	for i, record := range records {
		require.Less(t, record, uint32(1<<24))
		if i > 0 {
			require.Less(t, records[i-1], record)
		}
	}

	// Then: no position has two different moves
	table, err := NewTable(records)
	require.NoError(t, err)
	assert.Equal(t, len(records), table.Len())

	t.Run("Covers every reachable position", func(t *testing.T) {
		positions := ongoingPositions()

		// Then: every ongoing position for the side to move is stored, and nothing else
		assert.Equal(t, len(positions), table.Len())
		for board := range positions {
			_, ok := table.Lookup(board)
			require.True(t, ok, "missing position\n%s", board)
		}
	})

	t.Run("Stores the searched move", func(t *testing.T) {
		for board, turn := range ongoingPositions() {
			// Given: the move the depth-weighted search picks for this position
			searched := board
			_, want := search.New(turn, search.Config{UseDepth: true}, nil).Solve(&searched)

			// When: looking the position up
			got, ok := table.Lookup(board)

			// Then: the database agrees with a live search
			require.True(t, ok)
			require.Equal(t, want, got, "position\n%s", board)
		}
	})

	t.Run("Opens in the corner", func(t *testing.T) {
		move, ok := table.Lookup(entity.NewGame())

		require.True(t, ok)
		assert.Equal(t, 0, move)
	})
}

func TestBuildFile(t *testing.T) {
	// Given: a path in a temporary directory
	path := filepath.Join(t.TempDir(), "states.db")

	// When: building the database into a file and loading it back
	count, err := BuildFile(discardLogger(), path)
	require.NoError(t, err)

	table, err := Load(path)
	require.NoError(t, err)

	// Then: the file holds 3 bytes per record and every record is loaded
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(count*RecordSize), info.Size())
	assert.Equal(t, count, table.Len())

	// Then: saving the loaded table reproduces the file byte for byte
	again := filepath.Join(t.TempDir(), "states.db")
	require.NoError(t, Save(again, table.Records()))

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	got, err := os.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.db"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Truncated file", func(t *testing.T) {
		// Given: a file whose length is not a multiple of 3
		path := filepath.Join(t.TempDir(), "states.db")
		require.NoError(t, os.WriteFile(path, []byte{0x00, 0x00, 0x00, 0x40}, 0o600))

		// When: loading it
		table, err := Load(path)

		// Then: the load fails with a format error
		require.ErrorIs(t, err, apperror.ErrMalformedDatabase)
		assert.Nil(t, table)
	})
}
