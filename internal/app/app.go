// Package app wires configuration, storage and transport shared by the
// service binaries.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/trainhub/fitness-platform/backend/config"
	"github.com/trainhub/fitness-platform/backend/internal/database"
	"github.com/trainhub/fitness-platform/backend/internal/events"
	"github.com/trainhub/fitness-platform/backend/internal/i18n"
	"github.com/trainhub/fitness-platform/backend/internal/middleware"
	"github.com/trainhub/fitness-platform/backend/internal/router"
	"github.com/trainhub/fitness-platform/backend/internal/server"
	"github.com/trainhub/fitness-platform/backend/internal/users"
	"gorm.io/gorm"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// App holds the long-lived dependencies of a service process.
type App struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher events.Publisher
	Renderer  *middleware.ErrorRenderer
}

// New connects to the database, Redis and Kafka as configured and brings the
// schema up to date. Redis and Kafka are optional.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.Open(cfg.Database, cfg.Environment)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(ctx, db, cfg.Migrations.Dir); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	a := &App{
		Config:    cfg,
		DB:        db,
		Publisher: events.Nop{},
		Renderer:  middleware.NewErrorRenderer(i18n.New(cfg.Messages.Locale), cfg.Compat.LegacyStatusCodes),
	}

	if cfg.Redis.URL != "" {
		client, err := database.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Printf("Redis unavailable, continuing without rate limiting and identity cache: %v", err)
		} else {
			a.Redis = client
		}
	}

	if len(cfg.Kafka.Brokers) > 0 {
		a.Publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix)
		log.Printf("Publishing events to Kafka at %v", cfg.Kafka.Brokers)
	}

	return a, nil
}

// Directory returns the user directory for this process. The training service
// asks the user service when users.service_url is set; otherwise, and always
// for the user service itself (local), users are read from the database.
// Lookups are cached in Redis when it is available.
func (a *App) Directory(local bool) users.Directory {
	var dir users.Directory = users.NewStoreDirectory(a.DB)
	if !local && a.Config.Users.ServiceURL != "" {
		dir = users.NewHTTPDirectory(a.Config.Users.ServiceURL, a.Config.Users.LookupTimeout)
	}
	if a.Redis != nil {
		dir = users.NewCachedDirectory(dir, a.Redis, a.Config.Users.CacheTTL)
	}
	return dir
}

// Options builds the router options for service.
func (a *App) Options(service string, dir users.Directory) router.Options {
	opts := router.Options{
		Service:        service,
		Version:        Version,
		Renderer:       a.Renderer,
		Directory:      dir,
		IdentityHeader: a.Config.Identity.Header,
		LookupTimeout:  a.Config.Users.LookupTimeout,
		CORSOrigins:    a.Config.CORS.Origins,
		AccessLog:      true,
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		opts.DB = sqlDB
	}
	if a.Redis != nil && a.Config.RateLimit.Limit > 0 {
		opts.Limiter = middleware.NewRateLimiter(a.Redis, middleware.RateLimitConfig{
			Window:    a.Config.RateLimit.Window,
			Limit:     a.Config.RateLimit.Limit,
			KeyPrefix: "rate_limit:" + service,
		})
	}
	return opts
}

// Run serves handler until the process is interrupted or the server fails,
// then shuts down gracefully and releases every dependency.
func (a *App) Run(handler http.Handler) error {
	srv := server.New(a.Config.Server, handler)
	defer a.Close()

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

// Close releases the event publisher, Redis and the database pool.
func (a *App) Close() {
	if err := a.Publisher.Close(); err != nil {
		log.Printf("failed to close event publisher: %v", err)
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			log.Printf("failed to close Redis client: %v", err)
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}
}
