package admin

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	admins := r.Group("/admins")
	admins.Use(middleware.AuthMiddleware())
	{
		admins.GET("", middleware.Authorize(rbacService, domain.ResourceAdmin, domain.ActionRead), h.GetAll)
		admins.GET("/:id", middleware.Authorize(rbacService, domain.ResourceAdmin, domain.ActionRead), h.GetByID)
		admins.POST("", middleware.Authorize(rbacService, domain.ResourceAdmin, domain.ActionCreate), h.Create)
		admins.PUT("/:id", middleware.Authorize(rbacService, domain.ResourceAdmin, domain.ActionUpdate), h.Update)
		admins.DELETE("/:id", middleware.Authorize(rbacService, domain.ResourceAdmin, domain.ActionDelete), h.Delete)
	}
}
