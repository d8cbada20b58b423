package service

import (
	"context"

	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/timebucket"
	"github.com/trainhub/fitness-platform/backend/internal/types"
)

// IPlanService defines training plan and favorite operations
type IPlanService interface {
	CreatePlan(ctx context.Context, req *types.CreatePlanRequest) (*models.TrainingPlan, error)
	GetPlan(ctx context.Context, id uint) (*models.TrainingPlan, error)
	ListPlans(ctx context.Context) ([]models.TrainingPlan, error)
	ListPlansByDays(ctx context.Context, days models.Weekdays) ([]models.TrainingPlan, error)
	ListPlansByHours(ctx context.Context, start, end string) ([]models.TrainingPlan, error)
	MarkFavorite(ctx context.Context, planID, userID uint) (*models.FavoriteTrainingPlan, error)
	UnmarkFavorite(ctx context.Context, planID, userID uint) error
	ListFavorites(ctx context.Context, userID uint) ([]models.TrainingPlan, error)
}

// ISessionService defines operations on logged training sessions
type ISessionService interface {
	RecordSession(ctx context.Context, planID, userID uint, req *types.RecordSessionRequest) (*models.UserTraining, error)
	ListForPlanAndUser(ctx context.Context, planID, userID uint) ([]models.UserTraining, error)
	ListForUser(ctx context.Context, userID uint) ([]models.UserTraining, error)
	ListBetween(ctx context.Context, userID uint, req *types.IntervalRequest) ([]models.UserTraining, error)
	AggregateBetween(ctx context.Context, userID uint, req *types.IntervalRequest, unit string) ([]timebucket.Bucket, error)
}

// IReviewService defines plan review operations
type IReviewService interface {
	SubmitReview(ctx context.Context, planID, userID uint, req *types.SubmitReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context, planID uint) ([]models.Review, error)
}

// IGoalService defines athlete goal operations
type IGoalService interface {
	CreateGoal(ctx context.Context, athleteID uint, req *types.GoalRequest) (*models.Goal, error)
	ListGoals(ctx context.Context, athleteID uint) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, goalID uint, req *types.GoalRequest) (*models.Goal, error)
	DeleteGoal(ctx context.Context, goalID uint) error
	AchieveGoal(ctx context.Context, goalID uint) (*models.Goal, error)
}

// IUserService defines user account operations
type IUserService interface {
	CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
	SetMetadata(ctx context.Context, id uint, req *types.MetadataRequest) (*models.UserMetadata, error)
	GetMetadata(ctx context.Context, id uint) (*models.UserMetadata, error)
	ListInterests(ctx context.Context) ([]string, error)
	ChangeName(ctx context.Context, id uint, req *types.ChangeNameRequest) error
	SetBlocked(ctx context.Context, req *types.BlockRequest, blocked bool) error
	SetPushToken(ctx context.Context, id uint, req *types.PushTokenRequest) error
}

// IAdminService defines administrator account operations
type IAdminService interface {
	CreateAdmin(ctx context.Context, req *types.CreateAdminRequest) (*models.User, error)
	ListAdmins(ctx context.Context) ([]models.User, error)
	GetAdmin(ctx context.Context, id uint) (*models.User, error)
	DeleteAdmin(ctx context.Context, id uint) error
}

// INotificationService defines user notification operations
type INotificationService interface {
	SendNotification(ctx context.Context, userID uint, req *types.NotificationRequest) (*models.Notification, error)
	ListNotifications(ctx context.Context, userID uint) ([]models.Notification, error)
}

