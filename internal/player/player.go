// Package player provides the move-producing algorithms used by the simulation.
package player

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/movedb"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
)

const (
	KindMinimax  = "minimax"
	KindDatabase = "database"
	KindRandom   = "random"
)

// Algorithm selects moves for a fixed side.
type Algorithm interface {
	// GetMove returns a legal cell index for board. The board is not modified.
	GetMove(board entity.Board) (int, error)
	PlayAs() entity.Player
	Kind() string
}

// Options carries what the different kinds need. Unused fields are ignored.
type Options struct {
	Search search.Config
	Table  *movedb.Table
	Rand   *rand.Rand
}

// New creates an algorithm of the given kind.
func New(kind string, playAs entity.Player, opts Options) (Algorithm, error) {
	switch kind {
	case KindMinimax:
		return NewMinimax(playAs, opts.Search), nil
	case KindDatabase:
		if opts.Table == nil {
			return nil, fmt.Errorf("%s player needs a move table", kind)
		}
		return NewDatabase(playAs, opts.Table), nil
	case KindRandom:
		return NewRandom(playAs, opts.Rand), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, kind)
	}
}

// legalMoves returns the allowed moves of an ongoing board.
func legalMoves(board entity.Board) ([]int, error) {
	status := board.Evaluate()
	if !status.IsOngoing() {
		return nil, fmt.Errorf("%w: game result is %s", apperror.ErrNoAvailableMoves, status.Result)
	}

	return status.AllowedMoves, nil
}
