package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/trainhub/fitness-platform/backend/internal/clock"
	"github.com/trainhub/fitness-platform/backend/internal/events"
	"github.com/trainhub/fitness-platform/backend/internal/i18n"
	"github.com/trainhub/fitness-platform/backend/internal/middleware"
	"github.com/trainhub/fitness-platform/backend/internal/router"
	"github.com/trainhub/fitness-platform/backend/internal/service"
	"github.com/trainhub/fitness-platform/backend/internal/testhelpers"
	"github.com/trainhub/fitness-platform/backend/internal/users"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
)

// deployment runs both services the way the gateway sees them: the user
// service owns the users, the training service asks it over HTTP.
type deployment struct {
	users    *httptest.Server
	training *httptest.Server
}

func setupDeployment(t *testing.T, userDB, trainingDB *gorm.DB) *deployment {
	t.Helper()
	gin.SetMode(gin.TestMode)
	renderer := middleware.NewErrorRenderer(i18n.New(""), true)
	clk := clock.Fixed{At: time.Date(2025, 5, 27, 12, 0, 0, 0, time.UTC)}

	localDir := users.NewStoreDirectory(userDB)
	userGate := validation.NewGateway(localDir, validation.NewPlanStore(userDB), time.Second)
	userService := service.NewUserService(userDB, userGate, nil)
	userRouter := router.SetupUserRouter(router.Options{
		Service:       "user-service",
		Renderer:      renderer,
		Directory:     localDir,
		LookupTimeout: time.Second,
	}, router.UserServices{
		Users:         userService,
		Admins:        service.NewAdminService(userDB, userGate),
		Notifications: service.NewNotificationService(userDB, userService, clk, events.Nop{}),
	})
	userServer := httptest.NewServer(userRouter)
	t.Cleanup(userServer.Close)

	remoteDir := users.NewHTTPDirectory(userServer.URL, time.Second)
	gate := validation.NewGateway(remoteDir, validation.NewPlanStore(trainingDB), time.Second)
	trainingRouter := router.SetupTrainingRouter(router.Options{
		Service:       "training-service",
		Renderer:      renderer,
		Directory:     remoteDir,
		LookupTimeout: time.Second,
	}, router.TrainingServices{
		Plans:    service.NewPlanService(trainingDB, gate),
		Sessions: service.NewSessionService(trainingDB, gate, clk, events.Nop{}),
		Reviews:  service.NewReviewService(trainingDB, gate, clk, events.Nop{}),
		Goals:    service.NewGoalService(trainingDB, gate, clk, events.Nop{}),
	})
	trainingServer := httptest.NewServer(trainingRouter)
	t.Cleanup(trainingServer.Close)

	return &deployment{users: userServer, training: trainingServer}
}

func call(t *testing.T, method, url string, body interface{}, email string) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set(middleware.DefaultIdentityHeader, email)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out.Bytes()
}

func TestTrainingServiceResolvesUsersThroughUserService(t *testing.T) {
	// separate databases: the training service can only learn about users over HTTP
	d := setupDeployment(t, testhelpers.NewSQLiteDB(t), testhelpers.NewSQLiteDB(t))

	status, body := call(t, http.MethodPost, d.users.URL+"/api/users",
		map[string]string{"name": "Coach", "email": "coach@mail", "role": "trainer"}, "")
	require.Equal(t, http.StatusOK, status, string(body))
	var trainer struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &trainer))

	status, body = call(t, http.MethodPost, d.users.URL+"/api/users",
		map[string]string{"name": "Runner", "email": "runner@mail"}, "")
	require.Equal(t, http.StatusOK, status, string(body))

	plan := map[string]interface{}{
		"title": "Intervals", "type": "Running", "description": "400m repeats", "difficulty": 4,
		"trainerId": trainer.ID, "days": []string{"tuesday", "thursday"}, "start": "18:00", "end": "19:00",
	}
	status, body = call(t, http.MethodPost, d.training.URL+"/api/trainings", plan, "coach@mail")
	require.Equal(t, http.StatusOK, status, string(body))

	plan["trainerId"] = 999
	status, body = call(t, http.MethodPost, d.training.URL+"/api/trainings", plan, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"Trainer not found"}`, string(body))

	status, body = call(t, http.MethodPost, d.training.URL+"/api/trainings/1/favorite/2", nil, "runner@mail")
	require.Equal(t, http.StatusOK, status, string(body))

	status, _ = call(t, http.MethodPost, d.training.URL+"/api/trainings/1/favorite/42", nil, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = call(t, http.MethodPost, d.users.URL+"/api/users/block", map[string]uint{"userId": 2}, "")
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = call(t, http.MethodGet, d.training.URL+"/api/trainings", nil, "runner@mail")
	assert.Equal(t, http.StatusForbidden, status)
	assert.JSONEq(t, `{"message":"you do not have access to the system"}`, string(body))

	status, _ = call(t, http.MethodGet, d.training.URL+"/api/trainings", nil, "coach@mail")
	assert.Equal(t, http.StatusOK, status)
}

func TestUnreachableUserServiceIsNotReportedAsNotFound(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	d := setupDeployment(t, db, db)
	d.users.Close()

	status, body := call(t, http.MethodPost, fmt.Sprintf("%s/api/trainings/goals/%d", d.training.URL, 1),
		map[string]interface{}{"title": "Steps", "description": "Daily", "type": "Pasos", "metric": 10000}, "")
	assert.Equal(t, http.StatusInternalServerError, status, string(body))
	assert.NotContains(t, string(body), "not found")
}
