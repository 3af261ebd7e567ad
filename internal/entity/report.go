package entity

import "time"

// Report is the tally of a simulation run between two players.
type Report struct {
	ID         string        `json:"id"`
	PlayerX    string        `json:"player_x"`
	PlayerO    string        `json:"player_o"`
	Rounds     int           `json:"rounds"`
	XWins      int           `json:"x_wins"`
	OWins      int           `json:"o_wins"`
	Ties       int           `json:"ties"`
	Moves      int           `json:"moves"`
	Elapsed    time.Duration `json:"elapsed"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

// Record adds the outcome of one finished round.
func (that *Report) Record(status GameStatus, moves int) {
	that.Rounds++
	that.Moves += moves

	switch status.Winner {
	case PlayerX:
		that.XWins++
	case PlayerO:
		that.OWins++
	default:
		that.Ties++
	}
}

// AvgMoves returns the average number of moves per round.
func (that *Report) AvgMoves() float64 {
	if that.Rounds == 0 {
		return 0
	}

	return float64(that.Moves) / float64(that.Rounds)
}
