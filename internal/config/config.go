// Package config содержит логику чтения конфигурации сервиса заказов лапши.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/sulemanmukati/MongodbUserAuth/internal/hasher"
)

const (
	defaultRunAddress      = ":5678"
	defaultShutdownTimeout = 5 * time.Second
)

// ErrNoDatabaseURI возвращается, если адрес базы данных не задан ни флагом, ни переменной окружения.
var ErrNoDatabaseURI = errors.New("database URI is not set")

// Config содержит параметры конфигурации сервиса.
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	Port            string        `env:"PORT"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	BcryptCost      int           `env:"BCRYPT_COST"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами. PORT используется, только
// если адрес не задан явно.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI
	envBcryptCost := cfg.BcryptCost

	var flagRunAddress string
	flag.StringVar(&flagRunAddress, "a", "", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.IntVar(&cfg.BcryptCost, "c", hasher.DefaultCost, "bcrypt cost factor")

	flag.Parse()

	switch {
	case envRunAddress != "":
		cfg.RunAddress = envRunAddress
	case flagRunAddress != "":
		cfg.RunAddress = flagRunAddress
	case cfg.Port != "":
		cfg.RunAddress = ":" + cfg.Port
	default:
		cfg.RunAddress = defaultRunAddress
	}

	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envBcryptCost != 0 {
		cfg.BcryptCost = envBcryptCost
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры.
func (c *Config) Validate() error {
	if c.DatabaseURI == "" {
		return ErrNoDatabaseURI
	}
	return nil
}
