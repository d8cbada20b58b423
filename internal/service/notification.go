package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/clock"
	"github.com/trainhub/fitness-platform/backend/internal/events"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/observability"
	"github.com/trainhub/fitness-platform/backend/internal/types"
	"gorm.io/gorm"
)

// pushRequest is the payload handed to the push delivery consumer.
type pushRequest struct {
	PushToken    string               `json:"pushToken"`
	Notification *models.Notification `json:"notification"`
}

// NotificationService stores user notifications and hands them off for
// push delivery
type NotificationService struct {
	db     *gorm.DB
	users  *UserService
	clock  clock.Clock
	events events.Publisher
}

// Ensure NotificationService implements INotificationService
var _ INotificationService = (*NotificationService)(nil)

// NewNotificationService creates a new NotificationService instance
func NewNotificationService(db *gorm.DB, users *UserService, clk clock.Clock, pub events.Publisher) *NotificationService {
	if clk == nil {
		clk = clock.System{}
	}
	if pub == nil {
		pub = events.Nop{}
	}
	return &NotificationService{
		db:     db,
		users:  users,
		clock:  clk,
		events: pub,
	}
}

// SendNotification stores a notification for a user that has a push token
func (s *NotificationService) SendNotification(ctx context.Context, userID uint, req *types.NotificationRequest) (*models.Notification, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Title == nil || req.Body == nil || strings.TrimSpace(*req.Title) == "" {
		return nil, ErrNotificationMissingFields
	}

	var sender *models.User
	if req.FromUserID != nil {
		if sender, err = s.users.GetUser(ctx, *req.FromUserID); err != nil {
			return nil, err
		}
	}
	if user.PushToken == "" {
		return nil, ErrNoPushToken.With(userID)
	}

	n := &models.Notification{
		UserID:   userID,
		SenderID: req.FromUserID,
		Title:    *req.Title,
		Body:     *req.Body,
		Date:     s.clock.Now(),
	}
	if err := s.db.WithContext(ctx).Omit("Sender").Create(n).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to store notification: %w", err))
	}
	n.Sender = sender

	observability.RecordDomainEvent(observability.NotificationCreated)
	events.Emit(ctx, s.events, events.TopicNotificationCreated, strconv.FormatUint(uint64(userID), 10), n.Date,
		pushRequest{PushToken: user.PushToken, Notification: n})
	return n, nil
}

// ListNotifications returns the notifications received by a user, oldest first
func (s *NotificationService) ListNotifications(ctx context.Context, userID uint) ([]models.Notification, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	list := make([]models.Notification, 0)
	err := s.db.WithContext(ctx).
		Preload("Sender").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list notifications: %w", err))
	}
	return list, nil
}
