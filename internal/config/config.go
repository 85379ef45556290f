package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	SourceJSON     = "json"
	SourcePostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8080"`
	DataDir           string `env:"DATA_DIR" envDefault:"data"`
	EntitySource      string `env:"ENTITY_SOURCE" envDefault:"json"`
	DatabaseURL       string `env:"DATABASE_URL"`
	DBMaxConns        int    `env:"DB_MAX_CONNS" envDefault:"4"`
	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" envDefault:"60"`
	MaxAnswers        int    `env:"MAX_ANSWERS" envDefault:"4"`
	SessionRateLimit  int    `env:"SESSION_RATE_LIMIT" envDefault:"30"`
	APIJWTSecret      string `env:"API_JWT_SECRET"`
	APIJWTTTLMinutes  int    `env:"API_JWT_TTL_MINUTES" envDefault:"1440"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	return parse(env.Options{}, nil)
}

// LoadConfigWith aplica overrides (p.ej. flags de CLI) antes de validar.
func LoadConfigWith(override func(*Config)) (*Config, error) {
	return parse(env.Options{}, override)
}

func parse(opts env.Options, override func(*Config)) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, err
	}
	if override != nil {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate chequea combinaciones que env no puede expresar con tags.
func (c *Config) Validate() error {
	switch c.EntitySource {
	case SourceJSON:
		if c.DataDir == "" {
			return fmt.Errorf("%w: DATA_DIR is required for the json source", ErrInvalidConfig)
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for the postgres source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown ENTITY_SOURCE %q", ErrInvalidConfig, c.EntitySource)
	}
	if c.MaxAnswers < 2 {
		return fmt.Errorf("%w: MAX_ANSWERS must be at least 2", ErrInvalidConfig)
	}
	if c.SessionRateLimit < 0 {
		return fmt.Errorf("%w: SESSION_RATE_LIMIT must not be negative", ErrInvalidConfig)
	}
	if c.SessionTTLMinutes <= 0 {
		return fmt.Errorf("%w: SESSION_TTL_MINUTES must be positive", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c *Config) APIJWTTTL() time.Duration {
	return time.Duration(c.APIJWTTTLMinutes) * time.Minute
}
