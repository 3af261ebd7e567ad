// Package movedb stores the best move of every reachable position in a compact binary table.
//
// A position is packed into an integer with 2 bits per cell (00 empty, 01 X, 10 O) and the
// recommended move in bits 20-23:
//
//	0000 0000 MMMM 0099 8877 6655 4433 2211
//
// The top byte is always zero, so a record takes 3 bytes on disk.
package movedb

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	cellBits = 2
	cellMask = 0b11

	codeEmpty = 0b00
	codeX     = 0b01
	codeO     = 0b10

	moveOffset = 20
	moveMask   = 0b1111 << moveOffset

	// boardBits is the width of the packed board, bits 0-17.
	boardBits = entity.BoardSize * cellBits
	boardMask = 1<<boardBits - 1

	// TableSize is the number of distinct packed boards.
	TableSize = 1 << boardBits
)

// cellCode converts a mark into its 2-bit storage code.
func cellCode(player entity.Player) uint32 {
	switch player {
	case entity.PlayerX:
		return codeX
	case entity.PlayerO:
		return codeO
	default:
		return codeEmpty
	}
}

// playerFromCode converts a 2-bit storage code back into a mark.
func playerFromCode(code uint32) (entity.Player, error) {
	switch code {
	case codeEmpty:
		return entity.Empty, nil
	case codeX:
		return entity.PlayerX, nil
	case codeO:
		return entity.PlayerO, nil
	default:
		return entity.Empty, fmt.Errorf("%w: cell code %02b", apperror.ErrMalformedDatabase, code)
	}
}

// Encode packs board into bits 0-17. The move field is left zero.
func Encode(board entity.Board) uint32 {
	var code uint32
	for i, cell := range board {
		code |= cellCode(cell) << (i * cellBits)
	}

	return code
}

// Decode unpacks bits 0-17 of code. The move field is ignored.
func Decode(code uint32) (entity.Board, error) {
	var board entity.Board
	for i := range board {
		player, err := playerFromCode(code >> (i * cellBits) & cellMask)
		if err != nil {
			return entity.Board{}, fmt.Errorf("cell %d: %w", i, err)
		}
		board[i] = player
	}

	return board, nil
}

// AttachMove returns code with its move field replaced by move.
func AttachMove(code uint32, move int) uint32 {
	return StripMove(code) | uint32(move)<<moveOffset&moveMask
}

// StripMove returns code with the move field cleared.
func StripMove(code uint32) uint32 {
	return code &^ moveMask
}

// ReadMove extracts the move field of code.
func ReadMove(code uint32) int {
	return int(code & moveMask >> moveOffset)
}
