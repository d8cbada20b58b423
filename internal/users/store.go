package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trainhub/fitness-platform/backend/internal/models"
	"gorm.io/gorm"
)

// StoreDirectory reads users straight from the shared relational store.
type StoreDirectory struct {
	db *gorm.DB
}

var _ Directory = (*StoreDirectory)(nil)

func NewStoreDirectory(db *gorm.DB) *StoreDirectory {
	return &StoreDirectory{db: db}
}

func (d *StoreDirectory) GetUser(ctx context.Context, id uint) (*Identity, error) {
	var user models.User
	if err := d.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return FromModel(&user), nil
}

func (d *StoreDirectory) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	var user models.User
	err := d.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user by email: %w", err)
	}
	return FromModel(&user), nil
}
