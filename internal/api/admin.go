package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/fitness-platform/backend/internal/service"
	"github.com/trainhub/fitness-platform/backend/internal/types"
)

type AdminHandler struct {
	admins service.IAdminService
}

func NewAdminHandler(admins service.IAdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// RegisterRoutes registers the admin routes
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admins := router.Group("/admins")
	{
		admins.POST("", h.CreateAdmin)
		admins.GET("", h.ListAdmins)
		admins.GET("/:id", h.GetAdmin)
		admins.DELETE("/:id", h.DeleteAdmin)
	}
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req types.CreateAdminRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	admin, err := h.admins.CreateAdmin(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.admins.ListAdmins(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (h *AdminHandler) GetAdmin(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	admin, err := h.admins.GetAdmin(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.admins.DeleteAdmin(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted"})
}
