package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/testhelpers/mocks"
	"github.com/trainhub/fitness-platform/backend/internal/timebucket"
	"github.com/trainhub/fitness-platform/backend/internal/types"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
)

func handlerContext(method, target, body string, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Params = params
	return c, w
}

func TestListPlansByDaysReadsQuery(t *testing.T) {
	plans := new(mocks.MockPlanService)
	handler := NewTrainingHandler(plans, new(mocks.MockReviewService))

	expected := []models.TrainingPlan{{ID: 1, Title: "Morning run", Days: models.Weekdays{"monday"}}}
	plans.On("ListPlansByDays", mock.Anything, models.Weekdays{"monday", "friday"}).Return(expected, nil)

	c, w := handlerContext(http.MethodGet, "/trainings/between_dates?days=Monday,%20friday", "")
	handler.ListPlansByDays(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.TrainingPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Morning run", got[0].Title)
	plans.AssertExpectations(t)
}

func TestListPlansByHoursFallsBackToBody(t *testing.T) {
	plans := new(mocks.MockPlanService)
	handler := NewTrainingHandler(plans, new(mocks.MockReviewService))
	plans.On("ListPlansByHours", mock.Anything, "08:00", "12:00").Return([]models.TrainingPlan{}, nil)

	c, w := handlerContext(http.MethodGet, "/trainings/between_hours", `{"start":"08:00","end":"12:00"}`)
	handler.ListPlansByHours(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	plans.AssertExpectations(t)
}

func TestMarkFavoriteReportsMalformedPlanAsMissing(t *testing.T) {
	plans := new(mocks.MockPlanService)
	handler := NewTrainingHandler(plans, new(mocks.MockReviewService))

	c, _ := handlerContext(http.MethodPost, "/", "",
		gin.Param{Key: "id", Value: "abc"}, gin.Param{Key: "userId", Value: "2"})
	handler.MarkFavorite(c)

	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors.Last().Err, validation.ErrPlanNotFound)
	plans.AssertNotCalled(t, "MarkFavorite", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReviewPassesServiceErrorsOn(t *testing.T) {
	reviews := new(mocks.MockReviewService)
	handler := NewTrainingHandler(new(mocks.MockPlanService), reviews)
	reviews.On("SubmitReview", mock.Anything, uint(4), uint(9), mock.AnythingOfType("*types.SubmitReviewRequest")).
		Return(nil, validation.ErrPlanNotFound)

	c, w := handlerContext(http.MethodPost, "/", `{"score":5}`,
		gin.Param{Key: "id", Value: "4"}, gin.Param{Key: "userId", Value: "9"})
	handler.SubmitReview(c)

	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors.Last().Err, validation.ErrPlanNotFound)
	assert.Empty(t, w.Body.String())

	req := reviews.Calls[0].Arguments.Get(3).(*types.SubmitReviewRequest)
	require.NotNil(t, req.Score)
	assert.Equal(t, 5, *req.Score)
}

func TestAggregateShapes(t *testing.T) {
	sessions := new(mocks.MockSessionService)
	handler := NewSessionHandler(sessions)
	buckets := []timebucket.Bucket{
		{Label: "2025-05", Distance: 12.5, Steps: 9000, Calories: 700},
		{Label: "2025-06", Distance: 3, Steps: 1000, Calories: 150},
	}
	sessions.On("AggregateBetween", mock.Anything, uint(3), mock.Anything, "month").Return(buckets, nil)

	params := []gin.Param{{Key: "userId", Value: "3"}, {Key: "unit", Value: "month"}}

	c, w := handlerContext(http.MethodGet, "/?start=2025-05-01&end=2025-07-01", "", params...)
	handler.Aggregate(c)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []timebucket.Bucket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Equal(t, buckets, rows)

	c, w = handlerContext(http.MethodGet, "/?start=2025-05-01&end=2025-07-01&shape=columns", "", params...)
	handler.Aggregate(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"label":["2025-05","2025-06"],"distance":[12.5,3],"steps":[9000,1000],"calories":[700,150]}`, w.Body.String())
}

func TestGoalHandlers(t *testing.T) {
	goals := new(mocks.MockGoalService)
	handler := NewGoalHandler(goals)

	goals.On("DeleteGoal", mock.Anything, uint(5)).Return(nil)
	c, w := handlerContext(http.MethodDelete, "/", "", gin.Param{Key: "id", Value: "5"})
	handler.DeleteGoal(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Goal deleted"}`, w.Body.String())

	c, _ = handlerContext(http.MethodPost, "/", `{"title": 1}`, gin.Param{Key: "id", Value: "2"})
	handler.CreateGoal(c)
	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors.Last().Err, validation.ErrInvalidInput)
	goals.AssertNotCalled(t, "CreateGoal", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPlanWithMalformedID(t *testing.T) {
	plans := new(mocks.MockPlanService)
	handler := NewTrainingHandler(plans, new(mocks.MockReviewService))

	for _, id := range []string{"abc", "0", "-3"} {
		c, _ := handlerContext(http.MethodGet, "/", "", gin.Param{Key: "id", Value: id})
		handler.GetPlan(c)

		require.Len(t, c.Errors, 1, id)
		assert.ErrorIs(t, c.Errors.Last().Err, validation.ErrPlanNotFound, id)
	}
	plans.AssertNotCalled(t, "GetPlan", mock.Anything, mock.Anything)
}
