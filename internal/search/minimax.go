// Package search implements minimax with optional alpha-beta pruning and
// depth-weighted scoring for tic-tac-toe positions.
package search

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

const (
	// lowerBound and upperBound lie outside every reachable value, so they never cause a cut on their own.
	lowerBound = -20
	upperBound = 20

	winValue  = 10
	tieValue  = 0
	noMove    = 0
	openValue = tieValue
)

// Config selects the search variant.
type Config struct {
	UsePruning bool
	UseDepth   bool
}

// VisitFunc is called for every fully expanded maximize node with the restored board and the move
// chosen there. The chosen move is only optimal when pruning is disabled.
type VisitFunc func(board *entity.Board, move int)

// Searcher finds the best move for a fixed acting player.
type Searcher struct {
	playAs   entity.Player
	opponent entity.Player
	config   Config
	visit    VisitFunc

	nodes int
}

// New returns a searcher for playAs. visit may be nil.
func New(playAs entity.Player, config Config, visit VisitFunc) *Searcher {
	return &Searcher{
		playAs:   playAs,
		opponent: playAs.Opponent(),
		config:   config,
		visit:    visit,
	}
}

// BestMove is a shorthand for New(actingPlayer, config, nil).BestMove(board).
func BestMove(board *entity.Board, actingPlayer entity.Player, config Config) (int, int) {
	return New(actingPlayer, config, nil).BestMove(board)
}

// BestMove returns the value and move for the acting player. An empty board is answered with the
// corner 0 and the game value 0 without searching. The board is used as scratch space and is
// identical to the input when BestMove returns.
func (that *Searcher) BestMove(board *entity.Board) (int, int) {
	if board.IsEmpty() {
		return openValue, 0
	}

	return that.Solve(board)
}

// Solve runs the full search from board, without the empty-board shortcut.
// The returned move is meaningless when board is terminal.
func (that *Searcher) Solve(board *entity.Board) (int, int) {
	return that.maximize(board, 0, lowerBound, upperBound)
}

// Nodes returns the number of positions visited since the searcher was created.
func (that *Searcher) Nodes() int {
	return that.nodes
}

func (that *Searcher) maximize(board *entity.Board, depth, alpha, beta int) (int, int) {
	that.nodes++

	status := board.Evaluate()
	if !status.IsOngoing() {
		return that.terminalValue(status, depth), noMove
	}

	maxValue, maxMove := lowerBound, noMove
	for _, move := range status.AllowedMoves {
		value := play(board, move, that.playAs, func() int {
			v, _ := that.minimize(board, depth+1, alpha, beta)
			return v
		})

		if value > maxValue {
			maxValue, maxMove = value, move
		}

		if that.config.UsePruning {
			if maxValue >= beta {
				return maxValue, maxMove
			}

			if maxValue > alpha {
				alpha = maxValue
			}
		}
	}

	if that.visit != nil {
		that.visit(board, maxMove)
	}

	return maxValue, maxMove
}

func (that *Searcher) minimize(board *entity.Board, depth, alpha, beta int) (int, int) {
	that.nodes++

	status := board.Evaluate()
	if !status.IsOngoing() {
		return that.terminalValue(status, depth), noMove
	}

	minValue, minMove := upperBound, noMove
	for _, move := range status.AllowedMoves {
		value := play(board, move, that.opponent, func() int {
			v, _ := that.maximize(board, depth+1, alpha, beta)
			return v
		})

		if value < minValue {
			minValue, minMove = value, move
		}

		if that.config.UsePruning {
			if minValue <= alpha {
				return minValue, minMove
			}

			if minValue < beta {
				beta = minValue
			}
		}
	}

	return minValue, minMove
}

// terminalValue scores a finished game from the acting player's side.
// With depth weighting a faster win and a slower loss score higher.
func (that *Searcher) terminalValue(status entity.GameStatus, depth int) int {
	if status.Result == entity.Tie {
		return tieValue
	}

	if status.Winner == that.playAs {
		if that.config.UseDepth {
			return winValue - depth
		}
		return winValue
	}

	if that.config.UseDepth {
		return -winValue + depth
	}
	return -winValue
}

// play applies move for player, evaluates next and reverts the move, also when next exits early.
func play(board *entity.Board, move int, player entity.Player, next func() int) int {
	board.ApplyMove(move, player)
	defer board.ApplyMove(move, entity.Empty)

	return next()
}
