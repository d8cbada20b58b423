// Package users resolves user identities for services that only reference
// users by id or email.
package users

import (
	"context"
	"errors"

	"github.com/trainhub/fitness-platform/backend/internal/models"
)

// ErrNotFound is returned when the directory has no such user.
var ErrNotFound = errors.New("user not found")

// Identity is the part of a user other services rely on.
type Identity struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Blocked bool   `json:"blocked"`
}

// Directory looks users up. Implementations return ErrNotFound for absent
// users and any other error for transport or storage failures.
type Directory interface {
	GetUser(ctx context.Context, id uint) (*Identity, error)
	FindByEmail(ctx context.Context, email string) (*Identity, error)
}

// Invalidator is implemented by directories that cache identities.
type Invalidator interface {
	Forget(ctx context.Context, id uint, email string)
}

// FromModel projects a stored user onto an Identity.
func FromModel(u *models.User) *Identity {
	return &Identity{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Blocked: u.Blocked,
	}
}
