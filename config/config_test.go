package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env string) {
	t.Setenv("CI", "")
	t.Setenv("ENV", env)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	setEnv(t, "development")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=fitness sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 2*time.Second, cfg.Users.LookupTimeout)
	assert.Equal(t, "dev-email", cfg.Identity.Header)
	assert.True(t, cfg.Compat.LegacyStatusCodes)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	setEnv(t, "development")
	dir := t.TempDir()
	file := `
server:
  port: "9090"
database:
  name: trainings
users:
  service_url: http://user-service:8080
messages:
  locale: es
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(file), 0o600))
	t.Setenv("DATABASE_NAME", "from_env")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("COMPAT_LEGACY_STATUS_CODES", "false")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "from_env", cfg.Database.Name)
	assert.Equal(t, "http://user-service:8080", cfg.Users.ServiceURL)
	assert.Equal(t, "es", cfg.Messages.Locale)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Compat.LegacyStatusCodes)
}

func TestLoadConfigTestEnvironmentUsesSQLite(t *testing.T) {
	setEnv(t, "test")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestProductionDefaultsAndValidation(t *testing.T) {
	setEnv(t, "production")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 1)
	assert.Equal(t, "database.password", errs[0].Field)

	t.Setenv("DATABASE_PASSWORD", "s3cret")
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.Compat.LegacyStatusCodes)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: Development,
			Server:      ServerConfig{Port: "8080", ShutdownTimeout: time.Second},
			Database:    DatabaseConfig{Driver: "sqlite", SQLitePath: "test.db"},
			Users:       UsersConfig{LookupTimeout: time.Second},
			RateLimit:   RateLimitConfig{Window: time.Minute, Limit: 10},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad port", func(c *Config) { c.Server.Port = "http" }, "server.port"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "database.driver"},
		{"no lookup timeout", func(c *Config) { c.Users.LookupTimeout = 0 }, "users.lookup_timeout"},
		{"negative limit", func(c *Config) { c.RateLimit.Limit = -1 }, "rate_limit.limit"},
		{"unknown locale", func(c *Config) { c.Messages.Locale = "fr" }, "messages.locale"},
	}

	require.NoError(t, ValidateConfig(valid()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			var errs ValidationErrors
			require.True(t, errors.As(ValidateConfig(cfg), &errs))
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}
