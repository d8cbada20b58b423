package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/fitness-platform/backend/internal/service"
	"github.com/trainhub/fitness-platform/backend/internal/types"
)

// UserHandler serves user accounts, metadata and notifications.
type UserHandler struct {
	users         service.IUserService
	notifications service.INotificationService
}

func NewUserHandler(users service.IUserService, notifications service.INotificationService) *UserHandler {
	return &UserHandler{users: users, notifications: notifications}
}

// RegisterRoutes registers the user routes
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/lookup", h.Lookup)
		users.GET("/interests", h.ListInterests)
		users.POST("/block", h.Block)
		users.POST("/unblock", h.Unblock)
		users.GET("/:id", h.GetUser)
		users.DELETE("/:id", h.DeleteUser)
		users.PUT("/:id/metadata", h.SetMetadata)
		users.GET("/:id/metadata", h.GetMetadata)
		users.PUT("/:id/name", h.ChangeName)
		users.POST("/:id/set-push-token", h.SetPushToken)
		users.POST("/:id/notifications", h.SendNotification)
		users.GET("/:id/notifications", h.ListNotifications)
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req types.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Lookup resolves ?email= to a user; other services use it for caller identity.
func (h *UserHandler) Lookup(c *gin.Context) {
	user, err := h.users.GetUserByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListInterests(c *gin.Context) {
	interests, err := h.users.ListInterests(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, interests)
}

func (h *UserHandler) Block(c *gin.Context) {
	h.setBlocked(c, true)
}

func (h *UserHandler) Unblock(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *UserHandler) setBlocked(c *gin.Context, blocked bool) {
	var req types.BlockRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	if err := h.users.SetBlocked(c.Request.Context(), &req, blocked); err != nil {
		fail(c, err)
		return
	}

	status := "User blocked"
	if !blocked {
		status = "User unblocked"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": fmt.Sprintf("User with id %d deleted", id)})
}

func (h *UserHandler) SetMetadata(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req types.MetadataRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	if _, err := h.users.SetMetadata(c.Request.Context(), id, &req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": fmt.Sprintf("Metadata added for user with id %d", id)})
}

func (h *UserHandler) GetMetadata(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	meta, err := h.users.GetMetadata(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

func (h *UserHandler) ChangeName(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req types.ChangeNameRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	if err := h.users.ChangeName(c.Request.Context(), id, &req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Name changed"})
}

func (h *UserHandler) SetPushToken(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req types.PushTokenRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	if err := h.users.SetPushToken(c.Request.Context(), id, &req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Push token set"})
}

func (h *UserHandler) SendNotification(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req types.NotificationRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	if _, err := h.notifications.SendNotification(c.Request.Context(), id, &req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Notification saved and sended"})
}

func (h *UserHandler) ListNotifications(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	notifications, err := h.notifications.ListNotifications(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}
