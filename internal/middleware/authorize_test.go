package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubRBAC struct {
	allowed bool
	err     error
	calls   int
}

func (s *stubRBAC) Enforce(role domain.Role, resource, action string) (bool, error) {
	s.calls++
	return s.allowed, s.err
}

func performAuthorized(t *testing.T, svc middleware.RBACService, role string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	r.GET("/guarded",
		func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
		},
		middleware.Authorize(svc, domain.ResourceUser, domain.ActionRead),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorize_AllowsPermittedRole(t *testing.T) {
	svc := &stubRBAC{allowed: true}

	w := performAuthorized(t, svc, "HR")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.calls)
}

func TestAuthorize_MissingIdentity(t *testing.T) {
	svc := &stubRBAC{allowed: true}

	w := performAuthorized(t, svc, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.calls)
}

func TestAuthorize_UnknownRole(t *testing.T) {
	svc := &stubRBAC{allowed: true}

	w := performAuthorized(t, svc, "INTERN")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, svc.calls)
}

func TestAuthorize_DeniedRole(t *testing.T) {
	svc := &stubRBAC{allowed: false}

	w := performAuthorized(t, svc, "EMPLOYEE")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 1, svc.calls)
}
