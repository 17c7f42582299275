package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment at startup. A .env file in the working
// directory is loaded first by main.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`
	ContentPath string `env:"PORTFOLIO_CONTENT"`
	ImagesDir   string `env:"PORTFOLIO_IMAGES" envDefault:"images"`

	Analytics AnalyticsConfig
	Admin     AdminConfig
	SMTP      SMTPConfig
}

type AnalyticsConfig struct {
	Enabled   bool          `env:"PORTFOLIO_ANALYTICS" envDefault:"true"`
	DBPath    string        `env:"PORTFOLIO_DB" envDefault:"portfolio.db"`
	Retention time.Duration `env:"PORTFOLIO_RETENTION" envDefault:"8760h"` // 12 months
}

type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

type SMTPConfig struct {
	Host    string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port    string `env:"SMTP_PORT" envDefault:"587"`
	User    string `env:"SMTP_USER"`
	Pass    string `env:"SMTP_PASS"`
	ToEmail string `env:"TO_EMAIL"`
}

var errInvalidConfig = errors.New("invalid config")

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot start with.
func (c Config) Validate() error {
	if err := validPort(c.Port); err != nil {
		return fmt.Errorf("%w: PORT: %v", errInvalidConfig, err)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: GIN_MODE must be debug, release or test, got %q", errInvalidConfig, c.GinMode)
	}
	if c.Analytics.Enabled {
		if c.Analytics.DBPath == "" {
			return fmt.Errorf("%w: PORTFOLIO_DB must be set when analytics is enabled", errInvalidConfig)
		}
		if c.Analytics.Retention <= 0 {
			return fmt.Errorf("%w: PORTFOLIO_RETENTION must be positive", errInvalidConfig)
		}
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort("", c.Port)
}

func validPort(raw string) error {
	p, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%q is not a number", raw)
	}
	if p < 1 || p > 65535 {
		return fmt.Errorf("%d out of range", p)
	}
	return nil
}
