package movedb

import (
	"log/slog"
	"sort"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
)

// builderConfig expands every node: a pruned search would skip positions that must be recorded.
var builderConfig = search.Config{UsePruning: false, UseDepth: true}

// Build searches the whole game tree once as X from the empty board and once as O after each
// of the 9 first X moves. Every maximize node contributes a record; the result is deduplicated
// and sorted so that repeated builds produce identical files.
func Build(logger *slog.Logger) []uint32 {
	log := logger.With("component", "movedb.builder")

	saved := make(map[uint32]struct{})
	record := func(board *entity.Board, move int) {
		saved[AttachMove(Encode(*board), move)] = struct{}{}
	}

	log.Info("Building max tree", "player", entity.PlayerX.String())
	game := entity.NewGame()
	searcherX := search.New(entity.PlayerX, builderConfig, record)
	searcherX.Solve(&game)
	log.Debug("Max tree built", "player", entity.PlayerX.String(), "nodes", searcherX.Nodes(), "records", len(saved))

	log.Info("Building max tree", "player", entity.PlayerO.String())
	searcherO := search.New(entity.PlayerO, builderConfig, record)
	for first := 0; first < entity.BoardSize; first++ {
		game.ApplyMove(first, entity.PlayerX)
		searcherO.Solve(&game)
		game.ApplyMove(first, entity.Empty)
	}
	log.Debug("Max tree built", "player", entity.PlayerO.String(), "nodes", searcherO.Nodes(), "records", len(saved))

	records := make([]uint32, 0, len(saved))
	for r := range saved {
		records = append(records, r)
	}

	sort.Slice(records, func(i, j int) bool { return records[i] < records[j] })

	return records
}
