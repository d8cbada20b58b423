package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/service"
	"github.com/trainhub/fitness-platform/backend/internal/types"
)

// TrainingHandler serves training plans, favorites and reviews.
type TrainingHandler struct {
	plans   service.IPlanService
	reviews service.IReviewService
}

func NewTrainingHandler(plans service.IPlanService, reviews service.IReviewService) *TrainingHandler {
	return &TrainingHandler{plans: plans, reviews: reviews}
}

// RegisterRoutes registers the training plan routes
func (h *TrainingHandler) RegisterRoutes(router *gin.RouterGroup) {
	trainings := router.Group("/trainings")
	{
		trainings.GET("", h.ListPlans)
		trainings.POST("", h.CreatePlan)
		trainings.GET("/between_dates", h.ListPlansByDays)
		trainings.GET("/between_hours", h.ListPlansByHours)
		trainings.GET("/favorites/:userId", h.ListFavorites)
		trainings.GET("/:id", h.GetPlan)
		trainings.POST("/:id/favorite/:userId", h.MarkFavorite)
		trainings.DELETE("/:id/favorite/:userId", h.UnmarkFavorite)
		trainings.POST("/:id/review/:userId", h.SubmitReview)
		trainings.GET("/:id/reviews", h.ListReviews)
	}
}

func (h *TrainingHandler) ListPlans(c *gin.Context) {
	plans, err := h.plans.ListPlans(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *TrainingHandler) CreatePlan(c *gin.Context) {
	var req types.CreatePlanRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	plan, err := h.plans.CreatePlan(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *TrainingHandler) GetPlan(c *gin.Context) {
	id, err := planParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	plan, err := h.plans.GetPlan(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListPlansByDays reads ?days=monday,friday or a {"days": ...} body.
func (h *TrainingHandler) ListPlansByDays(c *gin.Context) {
	var req types.DaysQuery
	if q, ok := c.GetQuery("days"); ok {
		req.Days = models.ParseWeekdays(q)
	} else if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	plans, err := h.plans.ListPlansByDays(c.Request.Context(), req.Days)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ListPlansByHours reads ?start=HH:MM&end=HH:MM or the same keys from a body.
func (h *TrainingHandler) ListPlansByHours(c *gin.Context) {
	var req types.HoursQuery
	if c.Query("start") != "" || c.Query("end") != "" {
		req.Start, req.End = c.Query("start"), c.Query("end")
	} else if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	plans, err := h.plans.ListPlansByHours(c.Request.Context(), req.Start, req.End)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *TrainingHandler) MarkFavorite(c *gin.Context) {
	planID, userID, ok := planAndUser(c)
	if !ok {
		return
	}

	fav, err := h.plans.MarkFavorite(c.Request.Context(), planID, userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, fav)
}

func (h *TrainingHandler) UnmarkFavorite(c *gin.Context) {
	planID, userID, ok := planAndUser(c)
	if !ok {
		return
	}

	if err := h.plans.UnmarkFavorite(c.Request.Context(), planID, userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

func (h *TrainingHandler) ListFavorites(c *gin.Context) {
	userID, err := paramID(c, "userId")
	if err != nil {
		fail(c, err)
		return
	}

	plans, err := h.plans.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *TrainingHandler) SubmitReview(c *gin.Context) {
	planID, userID, ok := planAndUser(c)
	if !ok {
		return
	}

	var req types.SubmitReviewRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	review, err := h.reviews.SubmitReview(c.Request.Context(), planID, userID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *TrainingHandler) ListReviews(c *gin.Context) {
	planID, err := planParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	reviews, err := h.reviews.ListReviews(c.Request.Context(), planID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// planAndUser reads the :id and :userId parameters, reporting a failure itself.
// A malformed plan id is reported as a missing plan.
func planAndUser(c *gin.Context) (uint, uint, bool) {
	planID, err := planParam(c, "id")
	if err != nil {
		fail(c, err)
		return 0, 0, false
	}
	userID, err := paramID(c, "userId")
	if err != nil {
		fail(c, err)
		return 0, 0, false
	}
	return planID, userID, true
}
