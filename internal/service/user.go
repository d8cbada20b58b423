package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/observability"
	"github.com/trainhub/fitness-platform/backend/internal/types"
	"github.com/trainhub/fitness-platform/backend/internal/users"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserService handles user account operations
type UserService struct {
	db    *gorm.DB
	gate  *validation.Gateway
	cache users.Invalidator
}

// Ensure UserService implements IUserService
var _ IUserService = (*UserService)(nil)

// NewUserService creates a new UserService instance. cache may be nil.
func NewUserService(db *gorm.DB, gate *validation.Gateway, cache users.Invalidator) *UserService {
	return &UserService{
		db:    db,
		gate:  gate,
		cache: cache,
	}
}

// CreateUser registers an athlete or trainer
func (s *UserService) CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, error) {
	if err := s.gate.Struct(req, validation.Rule{Tag: "required", Err: ErrUserMissingFields}); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(*req.Name)
	email := strings.TrimSpace(*req.Email)
	if name == "" || email == "" {
		return nil, ErrUserMissingFields
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	switch role {
	case "":
		role = models.RoleAthlete
	case models.RoleAthlete, models.RoleTrainer:
	default:
		return nil, ErrInvalidRole
	}

	user := &models.User{Name: name, Email: email, Role: role}
	if err := createUnique(ctx, s.db, user, ErrEmailInUse.With(email)); err != nil {
		return nil, err
	}

	observability.RecordDomainEvent(observability.UserCreated)
	return user, nil
}

// ListUsers returns every non-admin user in creation order
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	list := make([]models.User, 0)
	err := s.db.WithContext(ctx).
		Where("role <> ?", models.RoleAdmin).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list users: %w", err))
	}
	return list, nil
}

// GetUser retrieves a user of any role by id
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserIDNotFound.With(id)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to load user %d: %w", id, err))
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email, ignoring case
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	var user models.User
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound.With(email)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to load user by email: %w", err))
	}
	return &user, nil
}

// DeleteUser removes a user with its metadata and received notifications.
// Notifications the user sent are kept without a sender.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserMetadata{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Notification{}).Where("sender_id = ?", id).Update("sender_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return apperrors.Internal(fmt.Errorf("failed to delete user %d: %w", id, err))
	}

	s.forget(ctx, user)
	return nil
}

// SetMetadata creates or replaces the profile data of a user
func (s *UserService) SetMetadata(ctx context.Context, id uint, req *types.MetadataRequest) (*models.UserMetadata, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, err
	}
	if err := s.gate.Struct(req, validation.Rule{Tag: "required", Err: ErrMetadataMissingFields}); err != nil {
		return nil, err
	}
	if !validation.Present(req.BirthDate) {
		return nil, ErrMetadataMissingFields
	}
	birthDate, err := validation.ParseTimestamp(req.BirthDate)
	if err != nil {
		return nil, err
	}

	meta := &models.UserMetadata{
		UserID:    id,
		Location:  *req.Location,
		Interests: *req.Interests,
		BirthDate: birthDate,
		Height:    *req.Height,
		Weight:    *req.Weight,
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"location", "interests", "birth_date", "height", "weight", "updated_at"}),
		}).
		Create(meta).Error
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to save metadata for user %d: %w", id, err))
	}
	return meta, nil
}

// GetMetadata retrieves the profile data of a user
func (s *UserService) GetMetadata(ctx context.Context, id uint) (*models.UserMetadata, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, err
	}

	var meta models.UserMetadata
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).First(&meta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMetadataNotFound.With(id)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to load metadata for user %d: %w", id, err))
	}
	return &meta, nil
}

// ListInterests returns every distinct interest declared in user metadata,
// in the order first declared
func (s *UserService) ListInterests(ctx context.Context) ([]string, error) {
	var rows []string
	err := s.db.WithContext(ctx).
		Model(&models.UserMetadata{}).
		Order("id ASC").
		Pluck("interests", &rows).Error
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list interests: %w", err))
	}

	seen := make(map[string]bool)
	interests := make([]string, 0)
	for _, row := range rows {
		for _, part := range strings.Split(row, ",") {
			interest := strings.TrimSpace(part)
			key := strings.ToLower(interest)
			if interest == "" || seen[key] {
				continue
			}
			seen[key] = true
			interests = append(interests, interest)
		}
	}
	return interests, nil
}

// ChangeName renames a user
func (s *UserService) ChangeName(ctx context.Context, id uint, req *types.ChangeNameRequest) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !validation.Present(req.Name) {
		return ErrNameMissing
	}

	var name string
	if err := json.Unmarshal(req.Name, &name); err != nil {
		return ErrNameNotString
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameMissing
	}

	if err := s.db.WithContext(ctx).Model(user).Update("name", name).Error; err != nil {
		return apperrors.Internal(fmt.Errorf("failed to rename user %d: %w", id, err))
	}
	s.forget(ctx, user)
	return nil
}

// SetBlocked blocks or unblocks a user
func (s *UserService) SetBlocked(ctx context.Context, req *types.BlockRequest, blocked bool) error {
	if req.UserID == nil {
		return ErrBlockMissingUser
	}
	user, err := s.GetUser(ctx, *req.UserID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Model(user).Update("blocked", blocked).Error; err != nil {
		return apperrors.Internal(fmt.Errorf("failed to update blocked flag of user %d: %w", user.ID, err))
	}
	if blocked {
		observability.RecordDomainEvent(observability.UserBlocked)
	}
	s.forget(ctx, user)
	return nil
}

// SetPushToken stores the device token notifications are delivered to
func (s *UserService) SetPushToken(ctx context.Context, id uint, req *types.PushTokenRequest) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if req.Token == nil || strings.TrimSpace(*req.Token) == "" {
		return ErrPushTokenMissing
	}

	if err := s.db.WithContext(ctx).Model(user).Update("push_token", strings.TrimSpace(*req.Token)).Error; err != nil {
		return apperrors.Internal(fmt.Errorf("failed to set push token of user %d: %w", id, err))
	}
	return nil
}

func (s *UserService) forget(ctx context.Context, user *models.User) {
	if s.cache != nil {
		s.cache.Forget(ctx, user.ID, user.Email)
	}
}

// createUnique inserts user, reporting dup when the email is taken.
func createUnique(ctx context.Context, db *gorm.DB, user *models.User, dup error) error {
	var taken int64
	err := db.WithContext(ctx).Model(&models.User{}).
		Where("LOWER(email) = ?", strings.ToLower(user.Email)).
		Count(&taken).Error
	if err != nil {
		return apperrors.Internal(fmt.Errorf("failed to check email: %w", err))
	}
	if taken > 0 {
		return dup
	}

	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dup
		}
		return apperrors.Internal(fmt.Errorf("failed to create user: %w", err))
	}
	return nil
}
