package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a configuration.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	lines := make([]string, len(e))
	for i, err := range e {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

var supportedLocales = map[string]bool{"": true, "en": true, "es": true}

// ValidateConfig checks if the configuration is usable in its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, message string) {
		errs = append(errs, ValidationError{Field: field, Message: message})
	}

	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port <= 0 || port > 65535 {
		add("server.port", fmt.Sprintf("invalid port %q", cfg.Server.Port))
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		add("server.shutdown_timeout", "must be positive")
	}

	switch cfg.Database.Driver {
	case "postgres":
		if cfg.Database.Host == "" {
			add("database.host", "is required for postgres")
		}
		if cfg.Database.Name == "" {
			add("database.name", "is required for postgres")
		}
		if cfg.Database.User == "" {
			add("database.user", "is required for postgres")
		}
		if cfg.Environment == Production && cfg.Database.Password == "" {
			add("database.password", "is required in production")
		}
	case "sqlite":
		if cfg.Database.SQLitePath == "" {
			add("database.sqlite_path", "is required for sqlite")
		}
	default:
		add("database.driver", fmt.Sprintf("unsupported driver %q", cfg.Database.Driver))
	}

	if cfg.Users.LookupTimeout <= 0 {
		add("users.lookup_timeout", "must be positive")
	}
	if cfg.RateLimit.Limit < 0 {
		add("rate_limit.limit", "must not be negative")
	}
	if cfg.RateLimit.Limit > 0 && cfg.RateLimit.Window <= 0 {
		add("rate_limit.window", "must be positive when a limit is set")
	}
	if !supportedLocales[cfg.Messages.Locale] {
		add("messages.locale", fmt.Sprintf("unsupported locale %q", cfg.Messages.Locale))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
