package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/movedb"
	"github.com/rocketscienceinc/tictactoe-solver/internal/player"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	switch conf.Mode {
	case config.ModeBuild:
		return runBuild(logger, conf)
	case config.ModeSimulate:
		return runSimulation(ctx, logger, conf)
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownMode, conf.Mode)
	}
}

func runBuild(logger *slog.Logger, conf *config.Config) error {
	count, err := movedb.BuildFile(logger, conf.DatabasePath)
	if err != nil {
		return fmt.Errorf("could not build move database: %w", err)
	}

	logger.Info("Move database built", "component", "app", "path", conf.DatabasePath, "records", count)

	return nil
}

func runSimulation(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	var table *movedb.Table
	if conf.Simulation.PlayerX.Kind == player.KindDatabase || conf.Simulation.PlayerO.Kind == player.KindDatabase {
		var err error
		if table, err = movedb.Load(conf.DatabasePath); err != nil {
			return fmt.Errorf("could not load move database: %w", err)
		}
		log.Info("Move database loaded", "path", conf.DatabasePath, "positions", table.Len())
	}

	seed := conf.Simulation.Seed
	if seed == 0 {
		seed = rand.Int63() //nolint: gosec // it's ok
	}
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok

	playerX, err := newPlayer(conf.Simulation.PlayerX, entity.PlayerX, table, rng)
	if err != nil {
		return err
	}

	playerO, err := newPlayer(conf.Simulation.PlayerO, entity.PlayerO, table, rng)
	if err != nil {
		return err
	}

	var reportRepo repository.ReportRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		reportRepo = repository.NewReportRepository(redisStorage.Connection)
	}

	simulation := usecase.NewSimulationUseCase(logger, reportRepo)

	log.Info("Starting simulation", "seed", seed)
	if _, err = simulation.Run(ctx, playerX, playerO, conf.Simulation.Rounds); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	return nil
}

func newPlayer(settings config.Player, playAs entity.Player, table *movedb.Table, rng *rand.Rand) (player.Algorithm, error) {
	algorithm, err := player.New(settings.Kind, playAs, player.Options{
		Search: search.Config{
			UsePruning: !settings.DisablePruning,
			UseDepth:   !settings.DisableDepth,
		},
		Table: table,
		Rand:  rng,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create player %s: %w", playAs, err)
	}

	return algorithm, nil
}
