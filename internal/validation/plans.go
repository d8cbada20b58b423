package validation

import (
	"context"

	"github.com/trainhub/fitness-platform/backend/internal/models"
	"gorm.io/gorm"
)

// PlanStore finds plans in the relational store.
type PlanStore struct {
	db *gorm.DB
}

var _ PlanFinder = (*PlanStore)(nil)

func NewPlanStore(db *gorm.DB) *PlanStore {
	return &PlanStore{db: db}
}

func (s *PlanStore) FindPlan(ctx context.Context, id uint) (*models.TrainingPlan, error) {
	var plan models.TrainingPlan
	if err := s.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}
