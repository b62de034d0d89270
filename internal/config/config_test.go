package config_test

import (
	"testing"
	"time"

	"github.com/Sepsepi/blakeaddr/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("BLAKE_ENV", "local")
	t.Setenv("BLAKE_INTERVAL", "10m")
	t.Setenv("BLAKE_PROVIDER_TYPE", "cyberbackground")
	t.Setenv("BLAKE_LOOKUP_ENABLED", "false")
	t.Setenv("BLAKE_CLEANUP_DIRS", "downloads, results")
	t.Setenv("BLAKE_PROXIES", "p1.example.com:8000:user:pass")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "cyberbackground", cfg.ProviderType)
	assert.False(t, cfg.LookupEnabled)
	assert.Equal(t, []string{"downloads", "results"}, cfg.CleanupDirs)
	assert.Equal(t, "p1.example.com:8000:user:pass", cfg.Proxies)
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, 168*time.Hour, cfg.CleanupMaxAge)
}

func TestMustLoad_IntervalError(t *testing.T) {
	t.Setenv("BLAKE_INTERVAL", "error_value")

	assert.PanicsWithValue(t, "failed to parse interval from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("BLAKE_HEALTH_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for monitoring server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_WorkersError(t *testing.T) {
	t.Setenv("BLAKE_WORKERS", "error_value")

	assert.PanicsWithValue(t, "failed to parse workers from configuration, must be an integer types", func() {
		config.MustLoad()
	})
}

func TestMustLoad_LookupFlagError(t *testing.T) {
	t.Setenv("BLAKE_LOOKUP_ENABLED", "error_value")

	assert.PanicsWithValue(t, "failed to parse lookup flag from configuration, must be a boolean", func() {
		config.MustLoad()
	})
}

func TestMustLoad_CleanupMaxAgeError(t *testing.T) {
	t.Setenv("BLAKE_CLEANUP_MAX_AGE", "error_value")

	assert.PanicsWithValue(t, "failed to parse cleanup max age from configuration", func() {
		config.MustLoad()
	})
}
