package player

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// Random picks uniformly among the legal moves.
type Random struct {
	playAs entity.Player
	rng    *rand.Rand
}

// NewRandom returns a random player. A nil rng uses the global source.
func NewRandom(playAs entity.Player, rng *rand.Rand) *Random {
	return &Random{playAs: playAs, rng: rng}
}

func (that *Random) GetMove(board entity.Board) (int, error) {
	availableCells, err := legalMoves(board)
	if err != nil {
		return 0, err
	}

	if that.rng == nil {
		return availableCells[rand.Intn(len(availableCells))], nil //nolint: gosec // it's ok
	}

	return availableCells[that.rng.Intn(len(availableCells))], nil
}

func (that *Random) PlayAs() entity.Player {
	return that.playAs
}

func (that *Random) Kind() string {
	return KindRandom
}
