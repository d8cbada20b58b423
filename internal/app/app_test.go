package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/fitness-platform/backend/config"
	"github.com/trainhub/fitness-platform/backend/internal/events"
	"github.com/trainhub/fitness-platform/backend/internal/users"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Environment: config.Test,
		Server:      config.ServerConfig{Port: "8080", ShutdownTimeout: time.Second},
		Database:    config.DatabaseConfig{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "app.db")},
		Users: config.UsersConfig{
			ServiceURL:    "http://user-service:8080",
			LookupTimeout: time.Second,
		},
		Identity:  config.IdentityConfig{Header: "dev-email"},
		RateLimit: config.RateLimitConfig{Window: time.Minute, Limit: 10},
	}
}

func TestNewWithoutOptionalBackends(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Redis)
	assert.IsType(t, events.Nop{}, a.Publisher)

	assert.IsType(t, &users.HTTPDirectory{}, a.Directory(false))
	assert.IsType(t, &users.StoreDirectory{}, a.Directory(true))

	opts := a.Options("training-service", a.Directory(false))
	assert.Equal(t, "training-service", opts.Service)
	assert.Equal(t, Version, opts.Version)
	assert.NotNil(t, opts.DB)
	assert.Nil(t, opts.Limiter)
}

func TestDirectoryFallsBackToDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.Users.ServiceURL = ""

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.IsType(t, &users.StoreDirectory{}, a.Directory(false))
}

func TestNewWithKafkaBrokers(t *testing.T) {
	cfg := testConfig(t)
	cfg.Kafka = config.KafkaConfig{Brokers: []string{"127.0.0.1:9092"}, TopicPrefix: "test."}

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.IsType(t, &events.KafkaPublisher{}, a.Publisher)
}
