package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the address pipeline service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the pipeline monitoring server.
// - ProviderType: The people-search provider to use (zabasearch, cyberbackground).
// - Workers: The number of concurrent workers for processing records.
// - Interval: The duration between processing intervals.
// - LookupEnabled: Whether parsed records are also sent to the people-search provider.
// - Proxies: Raw proxy list in host:port[:user:pass] form, comma-separated.
// - CleanupMaxAge: Retention window for temporary working files.
// - CleanupDirs: Directories swept for stale working files.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env           string
	Port          int
	ProviderType  string
	Workers       int
	Interval      time.Duration
	LookupEnabled bool
	Proxies       string
	CleanupMaxAge time.Duration
	CleanupDirs   []string
	Database      PostgresConfig
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a Config
// struct. It panics when a numeric or duration value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	interval, err := time.ParseDuration(setDefaultEnv("BLAKE_INTERVAL", "10m"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(setDefaultEnv("BLAKE_HEALTH_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(setDefaultEnv("BLAKE_WORKERS", "10"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer types")
	}

	lookupEnabled, err := strconv.ParseBool(setDefaultEnv("BLAKE_LOOKUP_ENABLED", "true"))
	if err != nil {
		panic("failed to parse lookup flag from configuration, must be a boolean")
	}

	cleanupMaxAge, err := time.ParseDuration(setDefaultEnv("BLAKE_CLEANUP_MAX_AGE", "168h"))
	if err != nil {
		panic("failed to parse cleanup max age from configuration")
	}

	return &Config{
		Env:           setDefaultEnv("BLAKE_ENV", "production"),
		Port:          healthPort,
		ProviderType:  setDefaultEnv("BLAKE_PROVIDER_TYPE", "zabasearch"),
		Workers:       workers,
		Interval:      interval,
		LookupEnabled: lookupEnabled,
		Proxies:       os.Getenv("BLAKE_PROXIES"),
		CleanupMaxAge: cleanupMaxAge,
		CleanupDirs:   splitDirs(setDefaultEnv("BLAKE_CLEANUP_DIRS", ".")),
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}

func splitDirs(raw string) []string {
	var dirs []string
	for _, dir := range strings.Split(raw, ",") {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
