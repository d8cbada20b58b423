package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/service"
	"github.com/trainhub/fitness-platform/backend/internal/timebucket"
	"github.com/trainhub/fitness-platform/backend/internal/types"
)

var (
	_ service.IPlanService    = (*MockPlanService)(nil)
	_ service.IReviewService  = (*MockReviewService)(nil)
	_ service.ISessionService = (*MockSessionService)(nil)
	_ service.IGoalService    = (*MockGoalService)(nil)
)

// MockPlanService is a mock implementation of service.IPlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) CreatePlan(ctx context.Context, req *types.CreatePlanRequest) (*models.TrainingPlan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainingPlan), args.Error(1)
}

func (m *MockPlanService) GetPlan(ctx context.Context, id uint) (*models.TrainingPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainingPlan), args.Error(1)
}

func (m *MockPlanService) ListPlans(ctx context.Context) ([]models.TrainingPlan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.TrainingPlan), args.Error(1)
}

func (m *MockPlanService) ListPlansByDays(ctx context.Context, days models.Weekdays) ([]models.TrainingPlan, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]models.TrainingPlan), args.Error(1)
}

func (m *MockPlanService) ListPlansByHours(ctx context.Context, start, end string) ([]models.TrainingPlan, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]models.TrainingPlan), args.Error(1)
}

func (m *MockPlanService) MarkFavorite(ctx context.Context, planID, userID uint) (*models.FavoriteTrainingPlan, error) {
	args := m.Called(ctx, planID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteTrainingPlan), args.Error(1)
}

func (m *MockPlanService) UnmarkFavorite(ctx context.Context, planID, userID uint) error {
	args := m.Called(ctx, planID, userID)
	return args.Error(0)
}

func (m *MockPlanService) ListFavorites(ctx context.Context, userID uint) ([]models.TrainingPlan, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.TrainingPlan), args.Error(1)
}

// MockReviewService is a mock implementation of service.IReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) SubmitReview(ctx context.Context, planID, userID uint, req *types.SubmitReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, planID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) ListReviews(ctx context.Context, planID uint) ([]models.Review, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).([]models.Review), args.Error(1)
}

// MockSessionService is a mock implementation of service.ISessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) RecordSession(ctx context.Context, planID, userID uint, req *types.RecordSessionRequest) (*models.UserTraining, error) {
	args := m.Called(ctx, planID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserTraining), args.Error(1)
}

func (m *MockSessionService) ListForPlanAndUser(ctx context.Context, planID, userID uint) ([]models.UserTraining, error) {
	args := m.Called(ctx, planID, userID)
	return args.Get(0).([]models.UserTraining), args.Error(1)
}

func (m *MockSessionService) ListForUser(ctx context.Context, userID uint) ([]models.UserTraining, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.UserTraining), args.Error(1)
}

func (m *MockSessionService) ListBetween(ctx context.Context, userID uint, req *types.IntervalRequest) ([]models.UserTraining, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).([]models.UserTraining), args.Error(1)
}

func (m *MockSessionService) AggregateBetween(ctx context.Context, userID uint, req *types.IntervalRequest, unit string) ([]timebucket.Bucket, error) {
	args := m.Called(ctx, userID, req, unit)
	return args.Get(0).([]timebucket.Bucket), args.Error(1)
}

// MockGoalService is a mock implementation of service.IGoalService
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) CreateGoal(ctx context.Context, athleteID uint, req *types.GoalRequest) (*models.Goal, error) {
	args := m.Called(ctx, athleteID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}

func (m *MockGoalService) ListGoals(ctx context.Context, athleteID uint) ([]models.Goal, error) {
	args := m.Called(ctx, athleteID)
	return args.Get(0).([]models.Goal), args.Error(1)
}

func (m *MockGoalService) UpdateGoal(ctx context.Context, goalID uint, req *types.GoalRequest) (*models.Goal, error) {
	args := m.Called(ctx, goalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, goalID uint) error {
	args := m.Called(ctx, goalID)
	return args.Error(0)
}

func (m *MockGoalService) AchieveGoal(ctx context.Context, goalID uint) (*models.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}
