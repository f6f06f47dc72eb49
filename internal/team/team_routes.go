package team

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("", middleware.Authorize(rbacService, domain.ResourceTeam, domain.ActionRead), h.GetAll)
		teams.GET("/:id", middleware.Authorize(rbacService, domain.ResourceTeam, domain.ActionRead), h.GetByID)
		teams.POST("", middleware.Authorize(rbacService, domain.ResourceTeam, domain.ActionCreate), h.Create)
		teams.PUT("/:id", middleware.Authorize(rbacService, domain.ResourceTeam, domain.ActionUpdate), h.Update)
		teams.PUT("/:id/members", middleware.Authorize(rbacService, domain.ResourceTeam, domain.ActionUpdate), h.ReplaceMembers)
		teams.DELETE("/:id", middleware.Authorize(rbacService, domain.ResourceTeam, domain.ActionDelete), h.Delete)
	}
}
