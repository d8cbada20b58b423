package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/trainhub/fitness-platform/backend/config"
	"github.com/trainhub/fitness-platform/backend/internal/app"
	"github.com/trainhub/fitness-platform/backend/internal/clock"
	"github.com/trainhub/fitness-platform/backend/internal/router"
	"github.com/trainhub/fitness-platform/backend/internal/service"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
)

func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	dir := a.Directory(false)
	gate := validation.NewGateway(dir, validation.NewPlanStore(a.DB), cfg.Users.LookupTimeout)
	clk := clock.System{}

	handler := router.SetupTrainingRouter(a.Options("training-service", dir), router.TrainingServices{
		Plans:    service.NewPlanService(a.DB, gate),
		Sessions: service.NewSessionService(a.DB, gate, clk, a.Publisher),
		Reviews:  service.NewReviewService(a.DB, gate, clk, a.Publisher),
		Goals:    service.NewGoalService(a.DB, gate, clk, a.Publisher),
	})

	if err := a.Run(handler); err != nil {
		log.Fatal(err)
	}
}
