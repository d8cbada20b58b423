package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment `mapstructure:"-"`

	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Users      UsersConfig      `mapstructure:"users"`
	Identity   IdentityConfig   `mapstructure:"identity"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Compat     CompatConfig     `mapstructure:"compat"`
	Messages   MessagesConfig   `mapstructure:"messages"`
	Migrations MigrationsConfig `mapstructure:"migrations"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	SSLMode      string `mapstructure:"ssl_mode"`
	SQLitePath   string `mapstructure:"sqlite_path"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// DSN returns the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type RedisConfig struct {
	// URL is optional; without it rate limiting and the identity cache are off.
	URL string `mapstructure:"url"`
}

type KafkaConfig struct {
	Brokers     []string `mapstructure:"brokers"`
	TopicPrefix string   `mapstructure:"topic_prefix"`
}

type UsersConfig struct {
	// ServiceURL points the training service at the user service. When empty
	// users are read from the shared database.
	ServiceURL    string        `mapstructure:"service_url"`
	LookupTimeout time.Duration `mapstructure:"lookup_timeout"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

type IdentityConfig struct {
	Header string `mapstructure:"header"`
}

type RateLimitConfig struct {
	Window time.Duration `mapstructure:"window"`
	Limit  int           `mapstructure:"limit"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

type CompatConfig struct {
	LegacyStatusCodes bool `mapstructure:"legacy_status_codes"`
}

type MessagesConfig struct {
	Locale string `mapstructure:"locale"`
}

type MigrationsConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoadConfig reads config.{yaml,json,toml} from path, overlays environment
// variables (server.port -> SERVER_PORT) and validates the result. A missing
// config file is not an error.
func LoadConfig(path string) (*Config, error) {
	env := GetEnvironment()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v, env)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.Environment = env

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, env Environment) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "fitness")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.sqlite_path", "fitness.db")
	v.SetDefault("database.max_open_conns", 25)

	v.SetDefault("redis.url", "")
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic_prefix", "")

	v.SetDefault("users.service_url", "")
	v.SetDefault("users.lookup_timeout", "2s")
	v.SetDefault("users.cache_ttl", "30s")

	v.SetDefault("identity.header", "dev-email")
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("rate_limit.limit", 120)
	v.SetDefault("cors.origins", []string{})

	// deployments pinned by the existing client suites expect the 401 quirk
	v.SetDefault("compat.legacy_status_codes", env != Production)
	v.SetDefault("messages.locale", "")
	v.SetDefault("migrations.dir", "migrations")

	if env == Test || env == CI {
		v.SetDefault("database.driver", "sqlite")
		v.SetDefault("database.sqlite_path", "file::memory:?cache=shared")
	}
}
