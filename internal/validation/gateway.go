// Package validation holds the checks every domain operation runs before it
// mutates anything: field presence and ranges, value parsing, and existence
// of the users and plans a request references.
package validation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/users"
	"gorm.io/gorm"
)

var (
	ErrPlanNotFound           = apperrors.NotFound("training_plan_not_found", "Training plan not found")
	ErrUserNotFound           = apperrors.NotFound("user_not_found", "User not found")
	ErrTrainerNotFound        = apperrors.NotFound("trainer_not_found", "Trainer not found")
	ErrUserServiceUnavailable = apperrors.Unavailable("user_service_unavailable", "User service unavailable")
	ErrInvalidInput           = apperrors.InvalidArgument("invalid_body", "Invalid request body")
)

// PlanFinder loads a plan by id, returning gorm.ErrRecordNotFound when absent.
type PlanFinder interface {
	FindPlan(ctx context.Context, id uint) (*models.TrainingPlan, error)
}

// Gateway runs existence checks and declarative field rules.
type Gateway struct {
	users    users.Directory
	plans    PlanFinder
	timeout  time.Duration
	validate *validator.Validate
}

// NewGateway creates a gateway. timeout bounds each user lookup; zero means
// only the caller's context applies.
func NewGateway(dir users.Directory, plans PlanFinder, timeout time.Duration) *Gateway {
	return &Gateway{
		users:    dir,
		plans:    plans,
		timeout:  timeout,
		validate: validator.New(),
	}
}

// EnsurePlan returns the plan or ErrPlanNotFound.
func (g *Gateway) EnsurePlan(ctx context.Context, id uint) (*models.TrainingPlan, error) {
	plan, err := g.plans.FindPlan(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to load training plan %d: %w", id, err))
	}
	return plan, nil
}

// EnsureUser returns the user or ErrUserNotFound.
func (g *Gateway) EnsureUser(ctx context.Context, id uint) (*users.Identity, error) {
	return g.lookupUser(ctx, id, ErrUserNotFound)
}

// EnsureTrainer is EnsureUser reporting ErrTrainerNotFound.
func (g *Gateway) EnsureTrainer(ctx context.Context, id uint) (*users.Identity, error) {
	return g.lookupUser(ctx, id, ErrTrainerNotFound)
}

func (g *Gateway) lookupUser(ctx context.Context, id uint, notFound *apperrors.Error) (*users.Identity, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	identity, err := g.users.GetUser(ctx, id)
	switch {
	case err == nil:
		return identity, nil
	case errors.Is(err, users.ErrNotFound):
		return nil, notFound
	case errors.Is(err, context.DeadlineExceeded):
		return nil, ErrUserServiceUnavailable.Wrap(err)
	default:
		return nil, apperrors.Internal(fmt.Errorf("user lookup for %d failed: %w", id, err))
	}
}

// Rule maps a failed validator tag to the error reported for it.
type Rule struct {
	Tag string
	Err error
}

// Struct validates v against its `validate` tags. Rules are checked in
// order, so listing "required" first reports missing fields before range
// violations.
func (g *Gateway) Struct(v interface{}, rules ...Rule) error {
	err := g.validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Internal(err)
	}

	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.Tag()] = true
	}
	for _, r := range rules {
		if failed[r.Tag] {
			return r.Err
		}
	}
	return ErrInvalidInput
}

// Required returns err unless every flag is set.
func Required(err error, present ...bool) error {
	for _, ok := range present {
		if !ok {
			return err
		}
	}
	return nil
}

// Positive returns err unless every value is strictly greater than zero.
func Positive(err error, values ...float64) error {
	for _, v := range values {
		if v <= 0 {
			return err
		}
	}
	return nil
}
