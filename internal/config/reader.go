package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrUnknownEnv       = errors.New("unknown env")
	ErrInvalidPoolSizes = errors.New("postgres min conns exceed max conns")
)

type Reader interface {
	Read() (*Config, error)
}

// EnvReader reads the configuration from the process environment. Values
// from a .env file are visible here once godotenv/autoload has run.
type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnv, c.Env)
	}

	if c.Postgres.MinConns > c.Postgres.MaxConns {
		return fmt.Errorf("%w: %d > %d", ErrInvalidPoolSizes,
			c.Postgres.MinConns, c.Postgres.MaxConns)
	}
	return nil
}
