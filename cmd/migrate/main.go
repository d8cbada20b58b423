package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/trainhub/fitness-platform/backend/config"
	"github.com/trainhub/fitness-platform/backend/internal/database"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", ".", "directory containing config.yaml")
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		log.Fatalf("SQL migrations target postgres, configured driver is %s", cfg.Database.Driver)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if *rollback {
		name, err := database.Rollback(ctx, db.DB, cfg.Migrations.Dir)
		if errors.Is(err, database.ErrNothingToRollback) {
			fmt.Println("No migrations to rollback")
			return
		}
		if err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		fmt.Printf("Successfully rolled back migration: %s\n", name)
		return
	}

	applied, err := database.Migrate(ctx, db.DB, cfg.Migrations.Dir)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	for _, name := range applied {
		fmt.Printf("Successfully applied migration: %s\n", name)
	}
	fmt.Println("All migrations applied successfully.")
}
