package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"yugen/internal/scheduling"
)

type DatabaseBackend string

const (
	DatabasePostgres DatabaseBackend = "postgres"
	DatabaseSQLite   DatabaseBackend = "sqlite"
)

// Config covers process level configuration read from environment variables.
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	DBBackend   DatabaseBackend
	PostgresURL string
	SQLitePath  string

	SchedulerMaxOperations int
	SchedulerMaxDays       int
	DefaultDayStart        string
	DefaultDayEnd          string

	TravelCacheTTL        time.Duration
	TravelCacheMaxEntries int
}

// Load reads an optional .env file, then environment variables, applies
// defaults and validates the result.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", ""),

		DBBackend:   DatabaseBackend(strings.ToLower(getEnv("DB_BACKEND", string(DatabasePostgres)))),
		PostgresURL: getEnv("POSTGRES_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "yugen.db"),

		SchedulerMaxOperations: getEnvInt("SCHEDULER_MAX_OPERATIONS", scheduling.DefaultMaxOperations),
		SchedulerMaxDays:       getEnvInt("SCHEDULER_MAX_DAYS", scheduling.DefaultMaxDays),
		DefaultDayStart:        getEnv("SCHEDULER_DEFAULT_DAY_START", "09:00"),
		DefaultDayEnd:          getEnv("SCHEDULER_DEFAULT_DAY_END", "18:00"),

		TravelCacheTTL:        getEnvDuration("TRAVEL_CACHE_TTL", 24*time.Hour),
		TravelCacheMaxEntries: getEnvInt("TRAVEL_CACHE_MAX_ENTRIES", 10000),
	}

	switch cfg.DBBackend {
	case DatabasePostgres:
		if cfg.PostgresURL == "" {
			return nil, fmt.Errorf("POSTGRES_URL must be provided when DB_BACKEND=postgres")
		}
	case DatabaseSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be provided when DB_BACKEND=sqlite")
		}
	default:
		return nil, fmt.Errorf("unsupported database backend %q", cfg.DBBackend)
	}

	if cfg.SchedulerMaxOperations <= 0 {
		return nil, fmt.Errorf("SCHEDULER_MAX_OPERATIONS must be positive, got %d", cfg.SchedulerMaxOperations)
	}
	if cfg.SchedulerMaxDays <= 0 {
		return nil, fmt.Errorf("SCHEDULER_MAX_DAYS must be positive, got %d", cfg.SchedulerMaxDays)
	}

	start, okStart := scheduling.ParseTimeToMinutes(cfg.DefaultDayStart)
	end, okEnd := scheduling.ParseTimeToMinutes(cfg.DefaultDayEnd)
	if !okStart || !okEnd {
		return nil, fmt.Errorf("SCHEDULER_DEFAULT_DAY_START/END must be HH:MM, got %q-%q", cfg.DefaultDayStart, cfg.DefaultDayEnd)
	}
	if end <= start {
		return nil, fmt.Errorf("SCHEDULER_DEFAULT_DAY_END %q must be after SCHEDULER_DEFAULT_DAY_START %q", cfg.DefaultDayEnd, cfg.DefaultDayStart)
	}

	if cfg.TravelCacheMaxEntries < 0 {
		return nil, fmt.Errorf("TRAVEL_CACHE_MAX_ENTRIES must not be negative, got %d", cfg.TravelCacheMaxEntries)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// getEnvDuration accepts Go durations ("30m") or bare seconds ("1800").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
