package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/trainhub/fitness-platform/backend/config"
	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/app"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/service"
	"github.com/trainhub/fitness-platform/backend/internal/types"
	"github.com/trainhub/fitness-platform/backend/internal/users"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
)

type seedUser struct {
	name  string
	email string
	role  string
}

type seedPlan struct {
	title       string
	kind        string
	description string
	difficulty  int
	location    string
	days        models.Weekdays
	start, end  string
}

var testUsers = []seedUser{
	{name: "Laura Gómez", email: "laura.trainer@trainhub.dev", role: models.RoleTrainer},
	{name: "Martín Díaz", email: "martin.trainer@trainhub.dev", role: models.RoleTrainer},
	{name: "Sofía Pérez", email: "sofia@trainhub.dev", role: models.RoleAthlete},
	{name: "Juan Torres", email: "juan@trainhub.dev", role: models.RoleAthlete},
	{name: "Ana Ruiz", email: "ana@trainhub.dev", role: models.RoleAthlete},
}

var testPlans = []seedPlan{
	{"Morning run", "Running", "Easy pace around the lake", 2, "Parque Centenario", models.Weekdays{"monday", "wednesday", "friday"}, "07:00", "08:00"},
	{"Intervals", "Running", "400m repeats on the track", 4, "Pista Municipal", models.Weekdays{"tuesday", "thursday"}, "18:00", "19:00"},
	{"Strength basics", "Gym", "Full body with free weights", 3, "Gimnasio Norte", models.Weekdays{"monday", "thursday"}, "19:30", "21:00"},
	{"Long ride", "Cycling", "Steady endurance ride", 3, "Costanera", models.Weekdays{"saturday"}, "08:00", "11:00"},
}

func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	adminPassword := flag.String("admin-password", "testpassword123", "password for the seeded admin")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer a.Close()

	dir := users.NewStoreDirectory(a.DB)
	gate := validation.NewGateway(dir, validation.NewPlanStore(a.DB), cfg.Users.LookupTimeout)
	userService := service.NewUserService(a.DB, gate, nil)
	adminService := service.NewAdminService(a.DB, gate)
	planService := service.NewPlanService(a.DB, gate)

	var trainers []uint
	for _, u := range testUsers {
		name, email := u.name, u.email
		user, err := userService.CreateUser(ctx, &types.CreateUserRequest{Name: &name, Email: &email, Role: u.role})
		if apperrors.KindOf(err) == apperrors.KindConflict {
			log.Printf("User %s already exists, skipping", u.email)
			if user, err = userService.GetUserByEmail(ctx, u.email); err != nil {
				log.Fatalf("Failed to load existing user %s: %v", u.email, err)
			}
		} else if err != nil {
			log.Fatalf("Failed to create user %s: %v", u.email, err)
		} else {
			log.Printf("Created %s %s (id %d)", u.role, u.email, user.ID)
		}
		if user.Role == models.RoleTrainer {
			trainers = append(trainers, user.ID)
		}
	}

	adminName, adminEmail := "Admin", "admin@trainhub.dev"
	admin, err := adminService.CreateAdmin(ctx, &types.CreateAdminRequest{Name: &adminName, Email: &adminEmail, Password: *adminPassword})
	switch {
	case apperrors.KindOf(err) == apperrors.KindConflict:
		log.Printf("Admin %s already exists, skipping", adminEmail)
	case err != nil:
		log.Fatalf("Failed to create admin: %v", err)
	default:
		log.Printf("Created admin %s (id %d)", admin.Email, admin.ID)
	}

	existing, err := planService.ListPlans(ctx)
	if err != nil {
		log.Fatalf("Failed to list plans: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("%d training plans already present, skipping plans", len(existing))
		return
	}
	if len(trainers) == 0 {
		log.Fatal("No trainers available to own the seeded plans")
	}

	for i, p := range testPlans {
		p := p
		trainerID := trainers[i%len(trainers)]
		plan, err := planService.CreatePlan(ctx, &types.CreatePlanRequest{
			Title:       &p.title,
			Type:        &p.kind,
			Description: &p.description,
			Difficulty:  &p.difficulty,
			TrainerID:   &trainerID,
			Location:    p.location,
			Days:        p.days,
			Start:       &p.start,
			End:         &p.end,
		})
		if err != nil {
			log.Fatalf("Failed to create plan %q: %v", p.title, err)
		}
		log.Printf("Created plan %q (id %d) for trainer %d", plan.Title, plan.ID, trainerID)
	}

	log.Println("Seeding complete")
}
