package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/trainhub/fitness-platform/backend/internal/clock"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/testhelpers"
	"github.com/trainhub/fitness-platform/backend/internal/users"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 5, 27, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db    *gorm.DB
	gate  *validation.Gateway
	clock clock.Fixed
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testhelpers.NewSQLiteDB(t)
	return &fixture{
		db:    db,
		gate:  validation.NewGateway(users.NewStoreDirectory(db), validation.NewPlanStore(db), time.Second),
		clock: clock.Fixed{At: testNow},
	}
}

func (f *fixture) user(t *testing.T, name, email, role string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Role: role}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) plan(t *testing.T, title string, trainerID uint, days models.Weekdays, start, end string) *models.TrainingPlan {
	t.Helper()
	p := &models.TrainingPlan{
		Title:       title,
		Type:        "Running",
		Description: "Test description",
		Difficulty:  3,
		State:       models.PlanActive,
		TrainerID:   trainerID,
		Days:        days,
		Start:       start,
		End:         end,
	}
	require.NoError(t, f.db.Create(p).Error)
	return p
}

func ptr[T any](v T) *T {
	return &v
}

func raw(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
