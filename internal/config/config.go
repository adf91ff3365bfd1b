package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/comitanigiacomo/kanso-heatmap/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-heatmap/internal/adapters/database"
)

// DriverMemory keeps the document in process memory only.
const DriverMemory = "memory"

var (
	ErrInvalidDriver   = errors.New("invalid DB_DRIVER")
	ErrInvalidTimezone = errors.New("invalid TZ_NAME")
	ErrInvalidNumber   = errors.New("invalid numeric setting")
)

type Config struct {
	Port       string
	LogLevel   string
	DocumentID string
	Location   *time.Location
	RateLimit  int

	DBDriver   string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBPath     string

	Redis cache.Config
}

// Load reads the environment, after merging the given .env files when they
// exist. Variables already set win over the files.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("load %s: %w", f, err)
			}
		}
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DocumentID: getEnv("DOCUMENT_ID", "user_default"),
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", DriverMemory)),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     os.Getenv("DB_NAME"),
		DBPath:     getEnv("DB_PATH", "kanso.db"),
		Redis: cache.Config{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}

	var err error
	if cfg.RateLimit, err = getInt("RATE_LIMIT", 100); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	if cfg.Location, err = LoadLocation(os.Getenv("TZ_NAME")); err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case DriverMemory, database.DriverPgx, database.DriverPQ, database.DriverSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDriver, cfg.DBDriver)
	}

	return cfg, nil
}

// LoadLocation resolves an IANA zone name. Empty means the local zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}

// DSN returns the data source name for the configured SQL driver.
func (c *Config) DSN() string {
	if c.DBDriver == database.DriverSQLite {
		return c.DBPath
	}
	return database.PostgresDSN(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, key, v)
	}
	return n, nil
}
