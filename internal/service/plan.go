package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/observability"
	"github.com/trainhub/fitness-platform/backend/internal/types"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanService handles training plan operations
type PlanService struct {
	db   *gorm.DB
	gate *validation.Gateway
}

// Ensure PlanService implements IPlanService
var _ IPlanService = (*PlanService)(nil)

// NewPlanService creates a new PlanService instance
func NewPlanService(db *gorm.DB, gate *validation.Gateway) *PlanService {
	return &PlanService{
		db:   db,
		gate: gate,
	}
}

// CreatePlan validates and stores a new plan
func (s *PlanService) CreatePlan(ctx context.Context, req *types.CreatePlanRequest) (*models.TrainingPlan, error) {
	if err := s.gate.Struct(req, validation.Rule{Tag: "required", Err: ErrPlanMissingFields}); err != nil {
		return nil, err
	}
	if len(req.Days) == 0 || strings.TrimSpace(*req.Title) == "" {
		return nil, ErrPlanMissingFields
	}

	start, err := validation.ParseClock(*req.Start)
	if err != nil {
		return nil, ErrPlanInvalidClock
	}
	end, err := validation.ParseClock(*req.End)
	if err != nil {
		return nil, ErrPlanInvalidClock
	}
	if start >= end {
		return nil, ErrPlanInvalidWindow
	}
	if !req.Days.Valid() {
		return nil, ErrPlanInvalidDays
	}

	state := strings.ToLower(strings.TrimSpace(req.State))
	switch state {
	case "":
		state = models.PlanActive
	case models.PlanActive, models.PlanInactive:
	default:
		return nil, ErrPlanInvalidState
	}

	if _, err := s.gate.EnsureTrainer(ctx, *req.TrainerID); err != nil {
		return nil, err
	}

	plan := &models.TrainingPlan{
		Title:       *req.Title,
		Type:        *req.Type,
		Description: *req.Description,
		Difficulty:  *req.Difficulty,
		State:       state,
		TrainerID:   *req.TrainerID,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Days:        req.Days,
		Start:       start,
		End:         end,
	}
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create training plan: %w", err))
	}

	observability.RecordDomainEvent(observability.PlanCreated)
	return plan, nil
}

// GetPlan retrieves a plan by id
func (s *PlanService) GetPlan(ctx context.Context, id uint) (*models.TrainingPlan, error) {
	return s.gate.EnsurePlan(ctx, id)
}

// ListPlans returns every plan in creation order
func (s *PlanService) ListPlans(ctx context.Context) ([]models.TrainingPlan, error) {
	plans := make([]models.TrainingPlan, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&plans).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list training plans: %w", err))
	}
	return plans, nil
}

// ListPlansByDays returns plans running on any of the given days
func (s *PlanService) ListPlansByDays(ctx context.Context, days models.Weekdays) ([]models.TrainingPlan, error) {
	if !days.Valid() {
		return nil, ErrPlanInvalidDays
	}

	query := s.db.WithContext(ctx).Model(&models.TrainingPlan{})
	cond := s.db.Where("(',' || days || ',') LIKE ?", "%,"+days[0]+",%")
	for _, d := range days[1:] {
		cond = cond.Or("(',' || days || ',') LIKE ?", "%,"+d+",%")
	}

	plans := make([]models.TrainingPlan, 0)
	if err := query.Where(cond).Order("id ASC").Find(&plans).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list training plans by days: %w", err))
	}
	return plans, nil
}

// ListPlansByHours returns plans whose schedule window overlaps [start, end].
// Windows that only touch at an endpoint overlap.
func (s *PlanService) ListPlansByHours(ctx context.Context, start, end string) ([]models.TrainingPlan, error) {
	from, err := validation.ParseClock(start)
	if err != nil {
		return nil, ErrPlanInvalidClock
	}
	to, err := validation.ParseClock(end)
	if err != nil {
		return nil, ErrPlanInvalidClock
	}
	if from > to {
		return nil, ErrPlanInvalidWindow
	}

	plans := make([]models.TrainingPlan, 0)
	err = s.db.WithContext(ctx).
		Where("start_time <= ? AND end_time >= ?", to, from).
		Order("id ASC").
		Find(&plans).Error
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list training plans by hours: %w", err))
	}
	return plans, nil
}

// MarkFavorite records the favorite once; repeated calls leave a single row
func (s *PlanService) MarkFavorite(ctx context.Context, planID, userID uint) (*models.FavoriteTrainingPlan, error) {
	if _, err := s.gate.EnsurePlan(ctx, planID); err != nil {
		return nil, err
	}
	if _, err := s.gate.EnsureUser(ctx, userID); err != nil {
		return nil, err
	}

	fav := &models.FavoriteTrainingPlan{UserID: userID, TrainingPlanID: planID}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fav)
	if result.Error != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to mark favorite: %w", result.Error))
	}
	if result.RowsAffected > 0 {
		observability.RecordDomainEvent(observability.FavoriteMarked)
	}

	return &models.FavoriteTrainingPlan{UserID: userID, TrainingPlanID: planID}, nil
}

// UnmarkFavorite removes the favorite if present
func (s *PlanService) UnmarkFavorite(ctx context.Context, planID, userID uint) error {
	if _, err := s.gate.EnsurePlan(ctx, planID); err != nil {
		return err
	}
	if _, err := s.gate.EnsureUser(ctx, userID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).
		Where("user_id = ? AND training_plan_id = ?", userID, planID).
		Delete(&models.FavoriteTrainingPlan{}).Error
	if err != nil {
		return apperrors.Internal(fmt.Errorf("failed to remove favorite: %w", err))
	}
	return nil
}

// ListFavorites returns the user's favorite plans in the order they were marked
func (s *PlanService) ListFavorites(ctx context.Context, userID uint) ([]models.TrainingPlan, error) {
	plans := make([]models.TrainingPlan, 0)
	err := s.db.WithContext(ctx).
		Joins("JOIN favorite_training_plans f ON f.training_plan_id = training_plans.id").
		Where("f.user_id = ?", userID).
		Order("f.id ASC").
		Find(&plans).Error
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list favorites: %w", err))
	}
	return plans, nil
}
