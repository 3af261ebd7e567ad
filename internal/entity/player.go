package entity

// Player is the mark in a cell. The numeric values are the ones summed along a line:
// three X give +3, three O give -3.
type Player int8

const (
	PlayerO Player = -1
	Empty   Player = 0
	PlayerX Player = 1
)

// Sign returns the arithmetic value of the mark used for line sums.
func (that Player) Sign() int {
	return int(that)
}

// Opponent returns the other side. Empty has no opponent and is returned unchanged.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}
