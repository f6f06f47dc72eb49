package notification

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", middleware.Authorize(rbacService, domain.ResourceNotification, domain.ActionRead), h.GetAll)
		notifications.PATCH("/:id/read", middleware.Authorize(rbacService, domain.ResourceNotification, domain.ActionUpdate), h.MarkRead)
	}
}
