package organization

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	organizations := r.Group("/organizations")
	organizations.Use(middleware.AuthMiddleware())
	{
		organizations.GET("", middleware.Authorize(rbacService, domain.ResourceOrganization, domain.ActionRead), h.GetAll)
		organizations.GET("/:id", middleware.Authorize(rbacService, domain.ResourceOrganization, domain.ActionRead), h.GetByID)
		organizations.POST("", middleware.Authorize(rbacService, domain.ResourceOrganization, domain.ActionCreate), h.Create)
		organizations.PUT("/:id", middleware.Authorize(rbacService, domain.ResourceOrganization, domain.ActionUpdate), h.Update)
		organizations.DELETE("/:id", middleware.Authorize(rbacService, domain.ResourceOrganization, domain.ActionDelete), h.Delete)

		organizations.GET("/:id/settings", middleware.Authorize(rbacService, domain.ResourceOrganization, domain.ActionRead), h.GetSettings)
		organizations.PUT("/:id/settings", middleware.Authorize(rbacService, domain.ResourceOrganization, domain.ActionUpdate), h.UpdateSettings)
	}
}
