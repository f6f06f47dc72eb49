package user

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", middleware.Authorize(rbacService, domain.ResourceUser, domain.ActionRead), h.GetAll)
		users.GET("/:id", middleware.Authorize(rbacService, domain.ResourceUser, domain.ActionRead), h.GetByID)
		users.POST("",
			middleware.Idempotency(rdb),
			middleware.Authorize(rbacService, domain.ResourceUser, domain.ActionCreate),
			h.Create,
		)
		users.PUT("/:id", middleware.Authorize(rbacService, domain.ResourceUser, domain.ActionUpdate), h.Update)
		users.DELETE("/:id", middleware.Authorize(rbacService, domain.ResourceUser, domain.ActionDelete), h.Delete)
	}
}
