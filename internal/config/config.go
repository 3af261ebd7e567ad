package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeBuild    = "build"
	ModeSimulate = "simulate"
)

type Config struct {
	LogLevel     string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode         string     `yaml:"mode" env:"MODE" env-default:"simulate"`
	DatabasePath string     `yaml:"database-path" env:"DATABASE_PATH" env-default:"states.db"`
	Simulation   Simulation `yaml:"simulation"`
	Redis        Redis      `yaml:"redis"`
}

type Simulation struct {
	Rounds  int    `yaml:"rounds" env:"SIMULATION_ROUNDS" env-default:"1000"`
	Seed    int64  `yaml:"seed" env:"SIMULATION_SEED" env-default:"0"`
	PlayerX Player `yaml:"player-x" env-prefix:"PLAYER_X_"`
	PlayerO Player `yaml:"player-o" env-prefix:"PLAYER_O_"`
}

// Player describes one side of the simulation. Kind is one of minimax, database or random.
// The search switches only apply to minimax and are on unless disabled.
type Player struct {
	Kind           string `yaml:"kind" env:"KIND" env-default:"minimax"`
	DisablePruning bool   `yaml:"disable-pruning" env:"DISABLE_PRUNING"`
	DisableDepth   bool   `yaml:"disable-depth" env:"DISABLE_DEPTH"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path and applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Mode != ModeBuild && config.Mode != ModeSimulate {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, config.Mode)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
