package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/fitness-platform/backend/internal/service"
	"github.com/trainhub/fitness-platform/backend/internal/types"
)

// GoalHandler serves athlete goals. On POST and GET the :id parameter is the
// athlete, on PUT and DELETE it is the goal.
type GoalHandler struct {
	goals service.IGoalService
}

func NewGoalHandler(goals service.IGoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

// RegisterRoutes registers the goal routes
func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/trainings/goals")
	{
		goals.POST("/:id", h.CreateGoal)
		goals.GET("/:id", h.ListGoals)
		goals.PUT("/:id", h.UpdateGoal)
		goals.DELETE("/:id", h.DeleteGoal)
		goals.PUT("/:id/achieve", h.AchieveGoal)
	}
}

func (h *GoalHandler) CreateGoal(c *gin.Context) {
	athleteID, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req types.GoalRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	goal, err := h.goals.CreateGoal(c.Request.Context(), athleteID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) ListGoals(c *gin.Context) {
	athleteID, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	goals, err := h.goals.ListGoals(c.Request.Context(), athleteID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	goalID, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req types.GoalRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	goal, err := h.goals.UpdateGoal(c.Request.Context(), goalID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	goalID, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.goals.DeleteGoal(c.Request.Context(), goalID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

func (h *GoalHandler) AchieveGoal(c *gin.Context) {
	goalID, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	goal, err := h.goals.AchieveGoal(c.Request.Context(), goalID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
