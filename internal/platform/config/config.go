package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config de la API. Todo sale de env (y opcionalmente de un .env en dev).
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// DBDriver vacío => postgres si hay DB_DSN, si no memory.
	DBDriver  string `env:"DB_DRIVER"`
	DBDSN     string `env:"DB_DSN"`
	DBMigrate bool   `env:"DB_MIGRATE" envDefault:"true"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"pet-store"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load lee la config de env. El .env es opcional (solo dev).
func Load() (*Config, error) {
	_ = godotenv.Load()
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if cfg.DBDriver == "" {
		if strings.TrimSpace(cfg.DBDSN) != "" {
			cfg.DBDriver = DriverPostgres
		} else {
			cfg.DBDriver = DriverMemory
		}
	}

	switch cfg.DBDriver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(cfg.DBDSN) == "" {
			return nil, fmt.Errorf("config: DB_DSN required for driver %q", cfg.DBDriver)
		}
	default:
		return nil, fmt.Errorf("config: unknown DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
