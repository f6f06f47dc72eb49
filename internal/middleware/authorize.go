package middleware

import (
	"net/http"

	"go-hrms/internal/domain"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface; anything with Enforce fits.
type RBACService interface {
	Enforce(role domain.Role, resource, action string) (bool, error)
}

// Authorize gates a route on the policy matrix. Requests with no
// authenticated identity fail 401; a recognized identity whose role is
// not in the allowed set fails 403 before the handler runs.
func Authorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized,
				apperror.CodeUnauthorized, "Authentication is required", nil)
			c.Abort()
			return
		}

		role, err := domain.ParseRole(roleStr.(string))
		if err != nil {
			response.Error(c, http.StatusForbidden,
				apperror.CodeForbidden, "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError,
				apperror.CodeInternalError, "An unexpected error occurred", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden,
				apperror.CodeForbidden, "You do not have permission to access this resource",
				map[string]string{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}
