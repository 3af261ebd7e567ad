package movedb

import (
	"fmt"
	"sort"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const absent = -1

// Table maps packed boards to their recommended move. It is indexed directly by the packed board,
// so lookups never hash. A Table is read-only after NewTable and safe for concurrent readers.
type Table struct {
	moves [TableSize]int8
	size  int
}

// NewTable validates records and loads them into a table. Duplicate records are accepted,
// two different moves for the same position are not.
func NewTable(records []uint32) (*Table, error) {
	table := &Table{}
	for i := range table.moves {
		table.moves[i] = absent
	}

	for i, record := range records {
		if err := validateRecord(record); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		key, move := StripMove(record), ReadMove(record)
		switch existing := table.moves[key]; {
		case existing == absent:
			table.moves[key] = int8(move)
			table.size++
		case int(existing) != move:
			return nil, fmt.Errorf("%w: record %d gives move %d for position %#05x already mapped to %d",
				apperror.ErrMalformedDatabase, i, move, key, existing)
		}
	}

	return table, nil
}

func validateRecord(record uint32) error {
	if unused := record &^ (boardMask | moveMask); unused != 0 {
		return fmt.Errorf("%w: unused bits set in %#08x", apperror.ErrMalformedDatabase, record)
	}

	if move := ReadMove(record); move >= entity.BoardSize {
		return fmt.Errorf("%w: move %d out of range", apperror.ErrMalformedDatabase, move)
	}

	if _, err := Decode(record); err != nil {
		return err
	}

	return nil
}

// Lookup returns the stored move for board.
func (that *Table) Lookup(board entity.Board) (int, bool) {
	move := that.moves[Encode(board)]
	if move == absent {
		return 0, false
	}

	return int(move), true
}

// Len returns the number of positions in the table.
func (that *Table) Len() int {
	return that.size
}

// Records returns the table content as records in ascending order.
func (that *Table) Records() []uint32 {
	records := make([]uint32, 0, that.size)
	for key, move := range that.moves {
		if move != absent {
			records = append(records, AttachMove(uint32(key), int(move)))
		}
	}

	sort.Slice(records, func(i, j int) bool { return records[i] < records[j] })

	return records
}
