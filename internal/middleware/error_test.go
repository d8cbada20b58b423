package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/i18n"
)

var (
	errMissing  = apperrors.MissingFields("interval_missing_fields", "Missing required fields (start or end date)")
	errAdminDup = apperrors.Conflict("admin_email_in_use", "Email ya está en uso")
	errNotFound = apperrors.NotFound("user_id_not_found", "user with id %d not found")
	errName     = apperrors.InvalidArgument("name_missing", "Debe proporcionar nombre").InErrorField()
)

func serve(r *ErrorRenderer, h gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery(r), ErrorHandler(r))
	router.GET("/", h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)
	return w
}

func failWith(err error) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Error(err)
	}
}

func TestErrorHandlerStatuses(t *testing.T) {
	normalized := NewErrorRenderer(i18n.New(""), false)
	legacy := NewErrorRenderer(i18n.New(""), true)

	tests := []struct {
		name     string
		renderer *ErrorRenderer
		err      error
		status   int
		body     string
	}{
		{"missing fields normalized", normalized, errMissing, http.StatusBadRequest, `{"message":"Missing required fields (start or end date)"}`},
		{"missing fields legacy", legacy, errMissing, http.StatusUnauthorized, `{"message":"Missing required fields (start or end date)"}`},
		{"admin duplicate normalized", normalized, errAdminDup, http.StatusConflict, `{"message":"Email ya está en uso"}`},
		{"admin duplicate legacy", legacy, errAdminDup, http.StatusInternalServerError, `{"message":"Email ya está en uso"}`},
		{"formatted not found", legacy, errNotFound.With(150), http.StatusNotFound, `{"message":"user with id 150 not found"}`},
		{"error field", legacy, errName, http.StatusBadRequest, `{"error":"Debe proporcionar nombre"}`},
		{"forbidden", legacy, ErrBlocked, http.StatusForbidden, `{"message":"you do not have access to the system"}`},
		{"plain error hides cause", legacy, errors.New("pq: connection refused"), http.StatusInternalServerError, `{"message":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.renderer, failWith(tt.err))
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestErrorHandlerTranslates(t *testing.T) {
	r := NewErrorRenderer(i18n.New("es"), false)

	w := serve(r, failWith(errNotFound.With(7)))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"usuario con id 7 no encontrado"}`, w.Body.String())
}

func TestErrorHandlerKeepsWrittenResponse(t *testing.T) {
	r := NewErrorRenderer(nil, false)

	w := serve(r, func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"status": "ok"})
		c.Error(errMissing)
	})
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := NewErrorRenderer(nil, false)

	w := serve(r, func(c *gin.Context) {
		panic("boom")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
}
