package player

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/movedb"
)

// Database answers from a precomputed move table.
type Database struct {
	playAs entity.Player
	table  *movedb.Table
}

func NewDatabase(playAs entity.Player, table *movedb.Table) *Database {
	return &Database{playAs: playAs, table: table}
}

// LoadDatabase reads the move database at path and returns a player backed by it.
func LoadDatabase(playAs entity.Player, path string) (*Database, error) {
	table, err := movedb.Load(path)
	if err != nil {
		return nil, fmt.Errorf("could not create database player: %w", err)
	}

	return NewDatabase(playAs, table), nil
}

// GetMove fails with ErrPositionNotFound when the board was not reached while building the table,
// e.g. when the table was built for the other side or the board is not reachable by legal play.
func (that *Database) GetMove(board entity.Board) (int, error) {
	if _, err := legalMoves(board); err != nil {
		return 0, err
	}

	move, ok := that.table.Lookup(board)
	if !ok {
		return 0, fmt.Errorf("%w: %#05x as %s", apperror.ErrPositionNotFound, movedb.Encode(board), that.playAs)
	}

	return move, nil
}

func (that *Database) PlayAs() entity.Player {
	return that.playAs
}

func (that *Database) Kind() string {
	return KindDatabase
}
