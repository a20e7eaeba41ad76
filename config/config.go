package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Storage backends for the key/value data (users list, active session).
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Port      string
	WebOrigin string
	GinMode   string
	LogLevel  string

	Storage  string
	Redis    RedisConfig
	Postgres PostgresConfig

	LoadDelay   time.Duration
	WarmStores  bool
	TaxRate     decimal.Decimal
	RefreshCron string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type PostgresConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

// DSN builds the libpq connection string gorm's postgres driver expects.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		p.Host, p.User, p.Password, p.Name, p.Port,
	)
}

// Load reads the optional env file and then the process environment.
// A missing .env is fine; values may come from the environment directly.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Port:      get("APP_PORT", get("PORT", "3001")),
		WebOrigin: get("WEB_ORIGIN", "http://localhost:5173"),
		GinMode:   get("GIN_MODE", "release"),
		LogLevel:  get("LOG_LEVEL", "info"),
		Storage:   strings.ToLower(get("STORAGE_BACKEND", BackendMemory)),
		Redis: RedisConfig{
			Addr:     get("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			Prefix:   os.Getenv("REDIS_PREFIX"),
		},
		Postgres: PostgresConfig{
			Host:     get("DB_HOST", "127.0.0.1"),
			User:     get("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     get("DB_NAME", "bonrecords"),
			Port:     get("DB_PORT", "5432"),
		},
		RefreshCron: get("REFRESH_CRON", "5 0 * * *"),
	}

	var err error
	if cfg.Redis.DB, err = strconv.Atoi(get("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	ms, err := strconv.Atoi(get("LOAD_DELAY_MS", "500"))
	if err != nil {
		return nil, fmt.Errorf("LOAD_DELAY_MS: %w", err)
	}
	cfg.LoadDelay = time.Duration(ms) * time.Millisecond
	if cfg.TaxRate, err = decimal.NewFromString(get("BILLING_TAX_RATE", "0.10")); err != nil {
		return nil, fmt.Errorf("BILLING_TAX_RATE: %w", err)
	}
	if cfg.WarmStores, err = strconv.ParseBool(get("WARM_STORES", "false")); err != nil {
		return nil, fmt.Errorf("WARM_STORES: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Port == "" {
		return errors.New("APP_PORT must be provided")
	}
	switch c.Storage {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR must be provided for the redis backend")
		}
	case BackendPostgres:
		if c.Postgres.Host == "" || c.Postgres.Name == "" {
			return errors.New("DB_HOST and DB_NAME must be provided for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage)
	}
	if c.LoadDelay < 0 {
		return errors.New("LOAD_DELAY_MS must not be negative")
	}
	if c.TaxRate.IsNegative() {
		return errors.New("BILLING_TAX_RATE must not be negative")
	}
	if c.RefreshCron == "" {
		return errors.New("REFRESH_CRON must be provided")
	}
	return nil
}

func get(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
