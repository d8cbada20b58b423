package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/fitness-platform/backend/internal/service"
	"github.com/trainhub/fitness-platform/backend/internal/timebucket"
	"github.com/trainhub/fitness-platform/backend/internal/types"
)

// SessionHandler serves logged training sessions and their aggregates.
type SessionHandler struct {
	sessions service.ISessionService
}

func NewSessionHandler(sessions service.ISessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// RegisterRoutes registers the user_training routes
func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	trainings := router.Group("/trainings")
	{
		trainings.POST("/:id/user_training/:userId", h.RecordSession)
		trainings.GET("/:id/user_training/:userId", h.ListForPlanAndUser)
		trainings.GET("/user_training/:userId", h.ListForUser)
		trainings.GET("/user_training/:userId/between_dates", h.ListBetween)
		trainings.POST("/user_training/:userId/between_dates", h.ListBetween)
		trainings.GET("/user_training/:userId/between_dates/group_by/:unit", h.Aggregate)
		trainings.POST("/user_training/:userId/between_dates/group_by/:unit", h.Aggregate)
	}
}

func (h *SessionHandler) RecordSession(c *gin.Context) {
	planID, userID, ok := planAndUser(c)
	if !ok {
		return
	}

	var req types.RecordSessionRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	session, err := h.sessions.RecordSession(c.Request.Context(), planID, userID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) ListForPlanAndUser(c *gin.Context) {
	planID, userID, ok := planAndUser(c)
	if !ok {
		return
	}

	sessions, err := h.sessions.ListForPlanAndUser(c.Request.Context(), planID, userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) ListForUser(c *gin.Context) {
	userID, err := paramID(c, "userId")
	if err != nil {
		fail(c, err)
		return
	}

	sessions, err := h.sessions.ListForUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) ListBetween(c *gin.Context) {
	userID, req, ok := interval(c)
	if !ok {
		return
	}

	sessions, err := h.sessions.ListBetween(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// Aggregate answers with an array of buckets, or with parallel arrays when
// ?shape=columns is given.
func (h *SessionHandler) Aggregate(c *gin.Context) {
	userID, req, ok := interval(c)
	if !ok {
		return
	}

	buckets, err := h.sessions.AggregateBetween(c.Request.Context(), userID, req, c.Param("unit"))
	if err != nil {
		fail(c, err)
		return
	}

	if c.Query("shape") == "columns" {
		c.JSON(http.StatusOK, timebucket.Columns(buckets))
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// interval reads the user id and the start/end bounds from the query string,
// falling back to a JSON body.
func interval(c *gin.Context) (uint, *types.IntervalRequest, bool) {
	userID, err := paramID(c, "userId")
	if err != nil {
		fail(c, err)
		return 0, nil, false
	}

	req := &types.IntervalRequest{Start: queryRaw(c, "start"), End: queryRaw(c, "end")}
	if req.Start == nil && req.End == nil {
		if err := bindJSON(c, req); err != nil {
			fail(c, err)
			return 0, nil, false
		}
	}
	return userID, req, true
}
