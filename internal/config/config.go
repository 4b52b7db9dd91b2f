package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vbncursed/vkr/board-service/internal/logger"
	"github.com/vbncursed/vkr/board-service/internal/repo/mongostore"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

var (
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	ErrUnknownDriver = errors.New("unknown store driver")
	ErrMissingURL    = errors.New("store driver requires a connection url")
	ErrLogFormat     = errors.New("unknown log format")
)

type Config struct {
	Bind          string `env:"BIND" envDefault:":1234"`
	Secret        string `env:"SECRET,required,notEmpty"`
	StoreDriver   string `env:"STORE_DRIVER" envDefault:"postgres"`
	DatabaseURL   string `env:"DATABASE_URL"`
	TrustProxy    bool   `env:"TRUST_PROXY" envDefault:"false"`
	BodyLimit     string `env:"BODY_LIMIT" envDefault:"4K"`
	EnableSwagger bool   `env:"ENABLE_SWAGGER" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL"`
	LogFormat     string `env:"LOG_FORMAT"`
	Env           string `env:"ENV" envDefault:"development"`

	Mongo mongostore.Config
}

// Load читает .env (если есть) и переменные окружения и проверяет выбор хранилища
func Load(files ...string) (Config, error) {
	cfg, err := Parse(files...)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse — Load без проверки хранилища, для утилит, которым нужен только секрет
func Parse(files ...string) (Config, error) {
	// .env может отсутствовать
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: LOG_FORMAT=%q, want %q or %q", ErrLogFormat, c.LogFormat, logger.FormatJSON, logger.FormatText)
	}
	switch c.Driver() {
	case DriverMemory:
		return nil
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL for %s", ErrMissingURL, c.StoreDriver)
		}
	case DriverMongo:
		if c.Mongo.ConnectionURL == "" {
			return fmt.Errorf("%w: MONGODB_URL for %s", ErrMissingURL, c.StoreDriver)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.StoreDriver)
	}
	return nil
}

// Driver — нормализованное имя драйвера хранилища
func (c Config) Driver() string { return strings.ToLower(c.StoreDriver) }
