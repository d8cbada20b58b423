package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/types"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
)

func goalRequest(goalType string, metric float64) *types.GoalRequest {
	return &types.GoalRequest{
		Title:       ptr("Run more"),
		Description: ptr("Run 10 km a week"),
		Type:        ptr(goalType),
		Metric:      ptr(metric),
	}
}

func TestGoalLifecycle(t *testing.T) {
	f := newFixture(t)
	athlete := f.user(t, "test user", "test-user@mail.com", models.RoleAthlete)
	svc := NewGoalService(f.db, f.gate, f.clock, nil)
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, athlete.ID, goalRequest(models.GoalDistance, 10))
	require.NoError(t, err)
	assert.False(t, goal.Achieved)
	assert.Nil(t, goal.LastAchieved)

	updated, err := svc.UpdateGoal(ctx, goal.ID, goalRequest(models.GoalSteps, 10000))
	require.NoError(t, err)
	assert.Equal(t, models.GoalSteps, updated.Type)
	assert.Equal(t, 10000.0, updated.Metric)

	achieved, err := svc.AchieveGoal(ctx, goal.ID)
	require.NoError(t, err)
	assert.True(t, achieved.Achieved)
	require.NotNil(t, achieved.LastAchieved)
	assert.True(t, achieved.LastAchieved.Equal(testNow))

	goals, err := svc.ListGoals(ctx, athlete.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.True(t, goals[0].Achieved)
	assert.NotNil(t, goals[0].LastAchieved)

	require.NoError(t, svc.DeleteGoal(ctx, goal.ID))
	goals, err = svc.ListGoals(ctx, athlete.ID)
	require.NoError(t, err)
	assert.Empty(t, goals)

	assert.ErrorIs(t, svc.DeleteGoal(ctx, goal.ID), ErrGoalNotFound)
	_, err = svc.AchieveGoal(ctx, goal.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalValidation(t *testing.T) {
	f := newFixture(t)
	athlete := f.user(t, "test user", "test-user@mail.com", models.RoleAthlete)
	svc := NewGoalService(f.db, f.gate, f.clock, nil)
	ctx := context.Background()

	_, err := svc.CreateGoal(ctx, 4555, goalRequest(models.GoalCalories, 100))
	assert.ErrorIs(t, err, validation.ErrUserNotFound)

	missing := goalRequest(models.GoalCalories, 100)
	missing.Description = nil
	_, err = svc.CreateGoal(ctx, athlete.ID, missing)
	assert.ErrorIs(t, err, ErrGoalMissingFields)

	for _, metric := range []float64{0, -5} {
		_, err = svc.CreateGoal(ctx, athlete.ID, goalRequest(models.GoalCalories, metric))
		assert.ErrorIs(t, err, ErrGoalMetricNotPositive)
		assert.EqualError(t, err, "La métrica debe ser positiva")
	}

	_, err = svc.CreateGoal(ctx, athlete.ID, goalRequest("Velocidad", 10))
	assert.ErrorIs(t, err, ErrGoalInvalidType)

	goal, err := svc.CreateGoal(ctx, athlete.ID, goalRequest(models.GoalCalories, 100))
	require.NoError(t, err)

	_, err = svc.UpdateGoal(ctx, goal.ID, goalRequest("Velocidad", 10))
	assert.ErrorIs(t, err, ErrGoalInvalidType)

	_, err = svc.UpdateGoal(ctx, 4555, goalRequest(models.GoalSteps, 10))
	assert.ErrorIs(t, err, ErrGoalNotFound)

	unknown, err := svc.ListGoals(ctx, 4555)
	require.NoError(t, err)
	assert.Empty(t, unknown)
}
