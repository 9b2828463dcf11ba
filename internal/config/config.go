package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

const defaultDatabaseURL = "postgres://localhost:5432/batepapo?sslmode=disable"

type Config struct {
	HTTPAddr            string        `env:"HTTP_ADDR,default=:5000" validate:"required"`
	StoreDriver         string        `env:"STORE_DRIVER,default=postgres" validate:"oneof=postgres badger"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	BadgerPath          string        `env:"BADGER_PATH,default=./data/badger"`
	ReaperInterval      time.Duration `env:"REAPER_INTERVAL,default=15s" validate:"gt=0"`
	InactivityThreshold time.Duration `env:"INACTIVITY_THRESHOLD,default=10s" validate:"gt=0"`
	Locale              string        `env:"LOCALE,default=pt-BR" validate:"required,bcp47_language_tag"`
	TimeZone            string        `env:"TIME_ZONE,default=America/Sao_Paulo"`
	LogLevel            string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	CORSAllowOrigin     string        `env:"CORS_ALLOW_ORIGIN,default=*" validate:"required"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s" validate:"gt=0"`
}

var validate = validator.New()

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate applies the configuration rules on a loaded Config.
func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config: %s is invalid (%s %s)", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("config: %w", err)
	}

	switch c.StoreDriver {
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Local default when DATABASE_URL is not provided.
			c.DatabaseURL = defaultDatabaseURL
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	case DriverBadger:
		if strings.TrimSpace(c.BadgerPath) == "" {
			return fmt.Errorf("config: BADGER_PATH is required with the badger driver")
		}
	}

	return nil
}
