package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrEmptyPort       = errors.New("port is empty")
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis   `yaml:"redis"`
	Game       Game    `yaml:"game"`
	Console    Console `yaml:"console"`
}

type Redis struct {
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REDIS_GAME_TTL" env-default:"24h"`
}

// Game bounds boards served over the network. The search is exhaustive, so anything above 3 is slow.
type Game struct {
	DefaultSize int `yaml:"default-size" env:"GAME_DEFAULT_SIZE" env-default:"3"`
	MaxSize     int `yaml:"max-size" env:"GAME_MAX_SIZE" env-default:"3"`
}

type Console struct {
	MaxSize int `yaml:"max-size" env:"CONSOLE_MAX_SIZE" env-default:"4"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the yaml file at path, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadEnv builds the config from the environment only; used by the console where no file is expected.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports every invalid setting at once.
func (that *Config) Validate() error {
	var result *multierror.Error

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel))
	}

	if that.HTTPPort == "" {
		result = multierror.Append(result, fmt.Errorf("http-port: %w", ErrEmptyPort))
	}

	if that.SocketPort == "" {
		result = multierror.Append(result, fmt.Errorf("socket-port: %w", ErrEmptyPort))
	}

	if that.Game.DefaultSize < board.MinSize {
		result = multierror.Append(result, fmt.Errorf("%w: game.default-size %d", apperror.ErrInvalidBoardSize, that.Game.DefaultSize))
	}

	if that.Game.MaxSize < that.Game.DefaultSize {
		result = multierror.Append(result, fmt.Errorf("%w: game.max-size %d is below default-size %d",
			apperror.ErrInvalidBoardSize, that.Game.MaxSize, that.Game.DefaultSize))
	}

	if that.Console.MaxSize < board.MinSize {
		result = multierror.Append(result, fmt.Errorf("%w: console.max-size %d", apperror.ErrInvalidBoardSize, that.Console.MaxSize))
	}

	return result.ErrorOrNil()
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
