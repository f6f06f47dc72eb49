package leave

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", middleware.Authorize(rbacService, domain.ResourceLeave, domain.ActionRead), h.GetAll)
		leaves.GET("/balance", middleware.Authorize(rbacService, domain.ResourceLeave, domain.ActionRead), h.Balance)
		leaves.GET("/:id", middleware.Authorize(rbacService, domain.ResourceLeave, domain.ActionRead), h.GetByID)
		leaves.POST("",
			middleware.Idempotency(rdb),
			middleware.Authorize(rbacService, domain.ResourceLeave, domain.ActionCreate),
			h.Create,
		)
		leaves.POST("/:id/approve", middleware.Authorize(rbacService, domain.ResourceLeave, domain.ActionApprove), h.Approve)
		leaves.POST("/:id/reject", middleware.Authorize(rbacService, domain.ResourceLeave, domain.ActionApprove), h.Reject)
		leaves.POST("/:id/cancel", middleware.Authorize(rbacService, domain.ResourceLeave, domain.ActionUpdate), h.Cancel)
	}
}
