package player

import (
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
)

// Minimax searches every position live.
type Minimax struct {
	playAs entity.Player
	config search.Config
}

func NewMinimax(playAs entity.Player, config search.Config) *Minimax {
	return &Minimax{playAs: playAs, config: config}
}

func (that *Minimax) GetMove(board entity.Board) (int, error) {
	if _, err := legalMoves(board); err != nil {
		return 0, err
	}

	// board is a copy, the search may use it as scratch space
	_, move := search.BestMove(&board, that.playAs, that.config)

	return move, nil
}

func (that *Minimax) PlayAs() entity.Player {
	return that.playAs
}

func (that *Minimax) Kind() string {
	return KindMinimax
}
