package leave

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-hrms/internal/domain"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create files a leave request for the authenticated user.
func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	orgID := c.GetString("organization_id")
	userID := c.GetString("user_id")

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), orgID, userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// GetAll is role-scoped: employees see only their own requests.
func (h *Handler) GetAll(c *gin.Context) {
	orgID := c.GetString("organization_id")

	userFilter := c.Query("user_id")
	if c.GetString("role") == string(domain.RoleEmployee) {
		userFilter = c.GetString("user_id")
	}

	resp, err := h.service.GetAll(c.Request.Context(), orgID, userFilter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	orgID := c.GetString("organization_id")
	id := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, h.service.Reject)
}

type decideFunc func(ctx context.Context, organizationID, id, approverID string, approverRole domain.Role, req DecideLeaveRequest) (LeaveResponse, error)

func (h *Handler) decide(c *gin.Context, fn decideFunc) {
	orgID := c.GetString("organization_id")
	id := c.Param("id")
	approverID := c.GetString("user_id")

	role, err := domain.ParseRole(c.GetString("role"))
	if err != nil {
		writeServiceError(c, leaveerrors.ErrInvalidUserID)
		return
	}

	var req DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := fn(c.Request.Context(), orgID, id, approverID, role, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	orgID := c.GetString("organization_id")
	id := c.Param("id")
	requesterID := c.GetString("user_id")

	resp, err := h.service.Cancel(c.Request.Context(), orgID, id, requesterID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Balance reports the caller's own balance unless a privileged role
// asks for another user with ?user_id=.
func (h *Handler) Balance(c *gin.Context) {
	orgID := c.GetString("organization_id")

	userID := c.GetString("user_id")
	if requested := c.Query("user_id"); requested != "" && c.GetString("role") != string(domain.RoleEmployee) {
		userID = requested
	}

	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeServiceError(c, leaveerrors.ErrInvalidDate)
			return
		}
		year = parsed
	}

	resp, err := h.service.Balance(c.Request.Context(), orgID, userID, year)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
