package department

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", middleware.Authorize(rbacService, domain.ResourceDepartment, domain.ActionRead), h.GetAll)
		departments.GET("/tree", middleware.Authorize(rbacService, domain.ResourceDepartment, domain.ActionRead), h.GetTree)
		departments.GET("/:id", middleware.Authorize(rbacService, domain.ResourceDepartment, domain.ActionRead), h.GetByID)
		departments.POST("", middleware.Authorize(rbacService, domain.ResourceDepartment, domain.ActionCreate), h.Create)
		departments.PUT("/:id", middleware.Authorize(rbacService, domain.ResourceDepartment, domain.ActionUpdate), h.Update)
		departments.DELETE("/:id", middleware.Authorize(rbacService, domain.ResourceDepartment, domain.ActionDelete), h.Delete)
	}
}
