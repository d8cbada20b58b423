package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/clock"
	"github.com/trainhub/fitness-platform/backend/internal/events"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/observability"
	"github.com/trainhub/fitness-platform/backend/internal/types"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
	"gorm.io/gorm"
)

// GoalService handles athlete goals
type GoalService struct {
	db     *gorm.DB
	gate   *validation.Gateway
	clock  clock.Clock
	events events.Publisher
}

// Ensure GoalService implements IGoalService
var _ IGoalService = (*GoalService)(nil)

// NewGoalService creates a new GoalService instance
func NewGoalService(db *gorm.DB, gate *validation.Gateway, clk clock.Clock, pub events.Publisher) *GoalService {
	if clk == nil {
		clk = clock.System{}
	}
	if pub == nil {
		pub = events.Nop{}
	}
	return &GoalService{
		db:     db,
		gate:   gate,
		clock:  clk,
		events: pub,
	}
}

func (s *GoalService) validate(req *types.GoalRequest) error {
	return s.gate.Struct(req,
		validation.Rule{Tag: "required", Err: ErrGoalMissingFields},
		validation.Rule{Tag: "gt", Err: ErrGoalMetricNotPositive},
		validation.Rule{Tag: "oneof", Err: ErrGoalInvalidType},
	)
}

// CreateGoal stores a new, not yet achieved goal for the athlete
func (s *GoalService) CreateGoal(ctx context.Context, athleteID uint, req *types.GoalRequest) (*models.Goal, error) {
	if _, err := s.gate.EnsureUser(ctx, athleteID); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		AthleteID:   athleteID,
		Title:       *req.Title,
		Description: *req.Description,
		Type:        *req.Type,
		Metric:      *req.Metric,
	}
	if err := s.db.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create goal: %w", err))
	}

	observability.RecordDomainEvent(observability.GoalCreated)
	return goal, nil
}

// ListGoals returns the athlete's goals in creation order
func (s *GoalService) ListGoals(ctx context.Context, athleteID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	err := s.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("id ASC").
		Find(&goals).Error
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list goals: %w", err))
	}
	return goals, nil
}

// UpdateGoal replaces the title, description, type and metric of a goal
func (s *GoalService) UpdateGoal(ctx context.Context, goalID uint, req *types.GoalRequest) (*models.Goal, error) {
	goal, err := s.load(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	goal.Title = *req.Title
	goal.Description = *req.Description
	goal.Type = *req.Type
	goal.Metric = *req.Metric
	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to update goal: %w", err))
	}
	return goal, nil
}

// DeleteGoal removes a goal
func (s *GoalService) DeleteGoal(ctx context.Context, goalID uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Goal{}, goalID)
	if result.Error != nil {
		return apperrors.Internal(fmt.Errorf("failed to delete goal: %w", result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// AchieveGoal marks a goal achieved and stamps the achievement time. It may
// be called again to record a later achievement.
func (s *GoalService) AchieveGoal(ctx context.Context, goalID uint) (*models.Goal, error) {
	goal, err := s.load(ctx, goalID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	goal.Achieved = true
	goal.LastAchieved = &now
	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to achieve goal: %w", err))
	}

	observability.RecordDomainEvent(observability.GoalAchieved)
	events.Emit(ctx, s.events, events.TopicGoalAchieved, strconv.FormatUint(uint64(goal.AthleteID), 10), now, goal)
	return goal, nil
}

func (s *GoalService) load(ctx context.Context, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.WithContext(ctx).First(&goal, goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to load goal %d: %w", goalID, err))
	}
	return &goal, nil
}
