package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/clock"
	"github.com/trainhub/fitness-platform/backend/internal/events"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/observability"
	"github.com/trainhub/fitness-platform/backend/internal/timebucket"
	"github.com/trainhub/fitness-platform/backend/internal/types"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
	"gorm.io/gorm"
)

// SessionService records training sessions and answers range queries over them
type SessionService struct {
	db     *gorm.DB
	gate   *validation.Gateway
	clock  clock.Clock
	events events.Publisher
}

// Ensure SessionService implements ISessionService
var _ ISessionService = (*SessionService)(nil)

// Interval is a parsed, validated date range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewSessionService creates a new SessionService instance
func NewSessionService(db *gorm.DB, gate *validation.Gateway, clk clock.Clock, pub events.Publisher) *SessionService {
	if clk == nil {
		clk = clock.System{}
	}
	if pub == nil {
		pub = events.Nop{}
	}
	return &SessionService{
		db:     db,
		gate:   gate,
		clock:  clk,
		events: pub,
	}
}

// RecordSession stores one session of userID against planID
func (s *SessionService) RecordSession(ctx context.Context, planID, userID uint, req *types.RecordSessionRequest) (*models.UserTraining, error) {
	if _, err := s.gate.EnsurePlan(ctx, planID); err != nil {
		return nil, err
	}
	if _, err := s.gate.EnsureUser(ctx, userID); err != nil {
		return nil, err
	}

	err := validation.Required(ErrSessionMissingFields,
		req.Distance != nil,
		req.Calories != nil,
		req.Steps != nil,
		validation.Present(req.Duration),
		validation.Present(req.Date),
	)
	if err != nil {
		return nil, err
	}
	if err := validation.Positive(ErrSessionNotPositive, *req.Distance, *req.Calories, float64(*req.Steps)); err != nil {
		return nil, err
	}

	duration, text, err := validation.ParseDuration(req.Duration)
	if err != nil {
		return nil, ErrSessionInvalidDuration
	}
	if duration <= 0 {
		return nil, ErrSessionNotPositive
	}

	date, err := validation.ParseTimestamp(req.Date)
	if err != nil {
		return nil, err
	}
	if date.After(s.clock.Now()) {
		return nil, ErrSessionFutureDate
	}

	session := &models.UserTraining{
		UserID:         userID,
		TrainingPlanID: planID,
		Distance:       *req.Distance,
		Calories:       *req.Calories,
		Steps:          *req.Steps,
		Duration:       text,
		Date:           date,
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to record training session: %w", err))
	}

	observability.RecordSessionRecorded(date)
	events.Emit(ctx, s.events, events.TopicSessionRecorded, strconv.FormatUint(uint64(userID), 10), s.clock.Now(), session)
	return session, nil
}

// ListForPlanAndUser returns the user's sessions on one plan
func (s *SessionService) ListForPlanAndUser(ctx context.Context, planID, userID uint) ([]models.UserTraining, error) {
	return s.find(ctx, s.db.Where("training_plan_id = ? AND user_id = ?", planID, userID))
}

// ListForUser returns the user's sessions across every plan
func (s *SessionService) ListForUser(ctx context.Context, userID uint) ([]models.UserTraining, error) {
	return s.find(ctx, s.db.Where("user_id = ?", userID))
}

// ListBetween returns the user's sessions dated within the interval, bounds included
func (s *SessionService) ListBetween(ctx context.Context, userID uint, req *types.IntervalRequest) ([]models.UserTraining, error) {
	interval, err := s.interval(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return s.between(ctx, userID, interval)
}

// AggregateBetween buckets the user's sessions within the interval by unit
func (s *SessionService) AggregateBetween(ctx context.Context, userID uint, req *types.IntervalRequest, unit string) ([]timebucket.Bucket, error) {
	interval, err := s.interval(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	u, err := timebucket.ParseUnit(unit)
	if err != nil {
		return nil, ErrInvalidGroupBy
	}

	sessions, err := s.between(ctx, userID, interval)
	if err != nil {
		return nil, err
	}

	samples := make([]timebucket.Sample, 0, len(sessions))
	for _, us := range sessions {
		samples = append(samples, timebucket.Sample{
			Date:     us.Date,
			Distance: us.Distance,
			Steps:    us.Steps,
			Calories: us.Calories,
		})
	}
	return timebucket.Aggregate(samples, u), nil
}

func (s *SessionService) interval(ctx context.Context, userID uint, req *types.IntervalRequest) (Interval, error) {
	if _, err := s.gate.EnsureUser(ctx, userID); err != nil {
		return Interval{}, err
	}
	if req == nil || !validation.Present(req.Start) || !validation.Present(req.End) {
		return Interval{}, ErrIntervalMissingFields
	}

	start, err := validation.ParseTimestamp(req.Start)
	if err != nil {
		return Interval{}, err
	}
	end, err := validation.ParseTimestamp(req.End)
	if err != nil {
		return Interval{}, err
	}
	if start.After(end) {
		return Interval{}, ErrIntervalInvalidOrder
	}
	return Interval{Start: start, End: end}, nil
}

func (s *SessionService) between(ctx context.Context, userID uint, iv Interval) ([]models.UserTraining, error) {
	return s.find(ctx, s.db.Where("user_id = ? AND session_date BETWEEN ? AND ?", userID, iv.Start, iv.End))
}

func (s *SessionService) find(ctx context.Context, cond *gorm.DB) ([]models.UserTraining, error) {
	sessions := make([]models.UserTraining, 0)
	if err := s.db.WithContext(ctx).Where(cond).Order("id ASC").Find(&sessions).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list training sessions: %w", err))
	}
	return sessions, nil
}

