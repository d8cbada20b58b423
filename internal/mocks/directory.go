package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/trainhub/fitness-platform/backend/internal/users"
)

// MockDirectory is a mock implementation of users.Directory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) GetUser(ctx context.Context, id uint) (*users.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Identity), args.Error(1)
}

func (m *MockDirectory) FindByEmail(ctx context.Context, email string) (*users.Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Identity), args.Error(1)
}
