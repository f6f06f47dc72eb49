package attendance

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", middleware.Authorize(rbacService, domain.ResourceAttendance, domain.ActionRead), h.List)
		attendances.GET("/:id", middleware.Authorize(rbacService, domain.ResourceAttendance, domain.ActionRead), h.GetByID)
		attendances.POST("", middleware.Authorize(rbacService, domain.ResourceAttendance, domain.ActionCreate), h.Record)
	}
}
