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

// ReviewService handles plan reviews
type ReviewService struct {
	db     *gorm.DB
	gate   *validation.Gateway
	clock  clock.Clock
	events events.Publisher
}

// Ensure ReviewService implements IReviewService
var _ IReviewService = (*ReviewService)(nil)

// NewReviewService creates a new ReviewService instance
func NewReviewService(db *gorm.DB, gate *validation.Gateway, clk clock.Clock, pub events.Publisher) *ReviewService {
	if clk == nil {
		clk = clock.System{}
	}
	if pub == nil {
		pub = events.Nop{}
	}
	return &ReviewService{
		db:     db,
		gate:   gate,
		clock:  clk,
		events: pub,
	}
}

// SubmitReview stores the single review userID may leave on planID
func (s *ReviewService) SubmitReview(ctx context.Context, planID, userID uint, req *types.SubmitReviewRequest) (*models.Review, error) {
	plan, err := s.gate.EnsurePlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if _, err := s.gate.EnsureUser(ctx, userID); err != nil {
		return nil, err
	}

	err = s.gate.Struct(req,
		validation.Rule{Tag: "required", Err: ErrReviewMissingFields},
		validation.Rule{Tag: "min", Err: ErrReviewScoreRange},
		validation.Rule{Tag: "max", Err: ErrReviewScoreRange},
	)
	if err != nil {
		return nil, err
	}
	if plan.TrainerID == userID {
		return nil, ErrReviewOwnPlan
	}

	var existing int64
	err = s.db.WithContext(ctx).Model(&models.Review{}).
		Where("user_id = ? AND training_plan_id = ?", userID, planID).
		Count(&existing).Error
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to check existing review: %w", err))
	}
	if existing > 0 {
		return nil, ErrReviewDuplicate
	}

	review := &models.Review{
		UserID:         userID,
		TrainingPlanID: planID,
		Score:          *req.Score,
		Comment:        req.Comment,
	}
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrReviewDuplicate
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to create review: %w", err))
	}

	observability.RecordDomainEvent(observability.ReviewSubmitted)
	events.Emit(ctx, s.events, events.TopicReviewSubmitted, strconv.FormatUint(uint64(planID), 10), s.clock.Now(), review)
	return review, nil
}

// ListReviews returns the reviews of a plan in submission order
func (s *ReviewService) ListReviews(ctx context.Context, planID uint) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := s.db.WithContext(ctx).
		Where("training_plan_id = ?", planID).
		Order("id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list reviews: %w", err))
	}
	return reviews, nil
}
