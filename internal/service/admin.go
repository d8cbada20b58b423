package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/types"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminService handles administrator accounts
type AdminService struct {
	db   *gorm.DB
	gate *validation.Gateway
}

// Ensure AdminService implements IAdminService
var _ IAdminService = (*AdminService)(nil)

// NewAdminService creates a new AdminService instance
func NewAdminService(db *gorm.DB, gate *validation.Gateway) *AdminService {
	return &AdminService{
		db:   db,
		gate: gate,
	}
}

// CreateAdmin registers an administrator. The password is optional and
// stored as a bcrypt hash.
func (s *AdminService) CreateAdmin(ctx context.Context, req *types.CreateAdminRequest) (*models.User, error) {
	if err := s.gate.Struct(req, validation.Rule{Tag: "required", Err: ErrUserMissingFields}); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(*req.Name)
	email := strings.TrimSpace(*req.Email)
	if name == "" || email == "" {
		return nil, ErrUserMissingFields
	}

	admin := &models.User{Name: name, Email: email, Role: models.RoleAdmin}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Internal(fmt.Errorf("failed to hash password: %w", err))
		}
		admin.PasswordHash = string(hash)
	}

	if err := createUnique(ctx, s.db, admin, ErrAdminEmailInUse); err != nil {
		return nil, err
	}
	return admin, nil
}

// ListAdmins returns every administrator in creation order
func (s *AdminService) ListAdmins(ctx context.Context) ([]models.User, error) {
	admins := make([]models.User, 0)
	err := s.db.WithContext(ctx).
		Where("role = ?", models.RoleAdmin).
		Order("id ASC").
		Find(&admins).Error
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list admins: %w", err))
	}
	return admins, nil
}

// GetAdmin retrieves an administrator by id
func (s *AdminService) GetAdmin(ctx context.Context, id uint) (*models.User, error) {
	var admin models.User
	err := s.db.WithContext(ctx).
		Where("role = ?", models.RoleAdmin).
		First(&admin, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound.With(id)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to load admin %d: %w", id, err))
	}
	return &admin, nil
}

// DeleteAdmin removes an administrator
func (s *AdminService) DeleteAdmin(ctx context.Context, id uint) error {
	if _, err := s.GetAdmin(ctx, id); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return apperrors.Internal(fmt.Errorf("failed to delete admin %d: %w", id, err))
	}
	return nil
}

// CheckPassword reports whether password matches the admin's stored hash.
func CheckPassword(admin *models.User, password string) bool {
	if admin.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
}
