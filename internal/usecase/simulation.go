package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type mover interface {
	GetMove(board entity.Board) (int, error)
	PlayAs() entity.Player
	Kind() string
}

type reportRepo interface {
	CreateOrUpdate(ctx context.Context, report *entity.Report) error
}

type SimulationUseCase interface {
	Run(ctx context.Context, playerX, playerO mover, rounds int) (*entity.Report, error)
	PlayRound(playerX, playerO mover) (entity.GameStatus, int, error)
}

type simulation struct {
	logger     *slog.Logger
	reportRepo reportRepo
	now        func() time.Time
}

// NewSimulationUseCase returns the game loop. reportRepo may be nil, then reports are only logged.
func NewSimulationUseCase(logger *slog.Logger, reportRepo reportRepo) SimulationUseCase {
	return &simulation{
		logger:     logger.With("component", "simulation"),
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// Run plays rounds games between playerX and playerO and tallies the outcomes.
func (that *simulation) Run(ctx context.Context, playerX, playerO mover, rounds int) (*entity.Report, error) {
	if playerX.PlayAs() != entity.PlayerX || playerO.PlayAs() != entity.PlayerO {
		return nil, fmt.Errorf("%w: got %s and %s", ErrPlayersSwapped, playerX.PlayAs(), playerO.PlayAs())
	}

	report := &entity.Report{
		ID:        uuid.NewString(),
		PlayerX:   playerX.Kind(),
		PlayerO:   playerO.Kind(),
		StartedAt: that.now(),
	}

	log := that.logger.With("report", report.ID)
	log.Info("Playing", "rounds", rounds, "player_x", report.PlayerX, "player_o", report.PlayerO)

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("simulation stopped after %d rounds: %w", round, err)
		}

		status, moves, err := that.PlayRound(playerX, playerO)
		if err != nil {
			return report, fmt.Errorf("round %d: %w", round, err)
		}

		report.Record(status, moves)
	}

	report.FinishedAt = that.now()
	report.Elapsed = report.FinishedAt.Sub(report.StartedAt)

	log.Info("Played",
		"rounds", report.Rounds,
		"x_wins", report.XWins,
		"o_wins", report.OWins,
		"ties", report.Ties,
		"avg_moves", report.AvgMoves(),
		"elapsed", report.Elapsed.String(),
	)

	if that.reportRepo != nil {
		if err := that.reportRepo.CreateOrUpdate(ctx, report); err != nil {
			return report, fmt.Errorf("failed to save report: %w", err)
		}
	}

	return report, nil
}

// PlayRound plays one game from the empty board, X first. It returns the final status and the
// number of moves made.
func (that *simulation) PlayRound(playerX, playerO mover) (entity.GameStatus, int, error) {
	board := entity.NewGame()
	inTurn := playerX

	moves := 0
	status := board.Evaluate()
	for status.IsOngoing() {
		move, err := inTurn.GetMove(board)
		if err != nil {
			return status, moves, fmt.Errorf("%s player %s failed to move: %w", inTurn.Kind(), inTurn.PlayAs(), err)
		}

		if err = board.CheckMove(move); err != nil {
			return status, moves, fmt.Errorf("%s player %s made an illegal move: %w", inTurn.Kind(), inTurn.PlayAs(), err)
		}

		board.ApplyMove(move, inTurn.PlayAs())
		moves++

		// It's simple logic for a game changing move
		if inTurn == playerX {
			inTurn = playerO
		} else {
			inTurn = playerX
		}

		status = board.Evaluate()
	}

	that.logger.Debug("Round finished", "result", status.Result.String(), "winner", status.Winner.String(), "board", board.String())

	return status, moves, nil
}
