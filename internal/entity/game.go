package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// Result is the outcome of a position.
type Result uint8

const (
	Ongoing Result = iota
	Win
	Tie
)

func (that Result) String() string {
	switch that {
	case Ongoing:
		return "ongoing"
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("result(%d)", uint8(that))
	}
}

// Lines lists every row, column and diagonal of the board.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// GameStatus is derived from a Board on every call to Evaluate and is never stored.
type GameStatus struct {
	Result       Result
	Winner       Player
	AllowedMoves []int
}

func (that GameStatus) IsOngoing() bool {
	return that.Result == Ongoing
}

// Board holds the 9 cells in row-major order: 0,1,2 is the top row and 6,7,8 the bottom row.
type Board [BoardSize]Player

// NewGame returns an empty board.
func NewGame() Board {
	return Board{}
}

// ApplyMove writes player into cell index. It does not validate anything: the caller guarantees
// that index is in [0,8] and currently Empty. Applying Empty reverts a move.
func (that *Board) ApplyMove(index int, player Player) {
	that[index] = player
}

// CheckMove reports whether index is a legal move on this board.
func (that Board) CheckMove(index int) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if that[index] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	return nil
}

// Evaluate computes the status of the board from the sums of its lines.
func (that Board) Evaluate() GameStatus {
	var sums [len(Lines)]int
	for i, line := range Lines {
		sums[i] = that[line[0]].Sign() + that[line[1]].Sign() + that[line[2]].Sign()
	}

	for _, sum := range sums {
		if sum == 3*PlayerX.Sign() {
			return GameStatus{Result: Win, Winner: PlayerX, AllowedMoves: []int{}}
		}
	}

	for _, sum := range sums {
		if sum == 3*PlayerO.Sign() {
			return GameStatus{Result: Win, Winner: PlayerO, AllowedMoves: []int{}}
		}
	}

	allowedMoves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			allowedMoves = append(allowedMoves, i)
		}
	}

	// the game continues while any cell is empty
	if len(allowedMoves) > 0 {
		return GameStatus{Result: Ongoing, Winner: Empty, AllowedMoves: allowedMoves}
	}

	return GameStatus{Result: Tie, Winner: Empty, AllowedMoves: []int{}}
}

// IsEmpty reports whether no mark has been placed yet.
func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != Empty {
			return false
		}
	}

	return true
}

// String renders the board as three rows, e.g. "X . O\n. X .\nO . .".
func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		sb.WriteString(cell.String())
		switch {
		case i == BoardSize-1:
		case i%3 == 2:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}
