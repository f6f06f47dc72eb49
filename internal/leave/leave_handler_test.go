package leave_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaveService struct {
	createFn func(ctx context.Context, organizationID, userID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
}

func (s *stubLeaveService) Create(ctx context.Context, organizationID, userID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return s.createFn(ctx, organizationID, userID, req)
}

func (s *stubLeaveService) GetAll(context.Context, string, string) ([]leave.LeaveResponse, error) {
	return nil, nil
}

func (s *stubLeaveService) GetByID(context.Context, string, string) (leave.LeaveDetailResponse, error) {
	return leave.LeaveDetailResponse{}, nil
}

func (s *stubLeaveService) Approve(context.Context, string, string, string, domain.Role, leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}

func (s *stubLeaveService) Reject(context.Context, string, string, string, domain.Role, leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}

func (s *stubLeaveService) Cancel(context.Context, string, string, string) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}

func (s *stubLeaveService) Balance(context.Context, string, string, int) (leave.BalanceResponse, error) {
	return leave.BalanceResponse{}, nil
}

// A successful create must fill the idempotency response cache and
// release the in-flight lock handed over by the middleware.
func TestLeaveHandler_Create_FillsIdempotencyCacheAndFreesLock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, rmock := redismock.NewClientMock()

	svc := &stubLeaveService{
		createFn: func(_ context.Context, _, userID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{UserID: userID, LeaveType: req.LeaveType, Status: "PENDING"}, nil
		},
	}
	h := leave.NewHandlerWithRedis(svc, rdb)

	cacheKey := "idemp:/leaves:u1:key-9"
	lockKey := cacheKey + ":lock"
	rmock.Regexp().ExpectSet(cacheKey, `.*`, 24*time.Hour).SetVal("OK")
	rmock.ExpectDel(lockKey).SetVal(1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, err := json.Marshal(leave.CreateLeaveRequest{
		LeaveType: "ANNUAL",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		Reason:    "holiday",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("organization_id", "org-1")
	c.Set("user_id", "u1")
	c.Set("idempotency_cache_key", cacheKey)
	c.Set("idempotency_lock_key", lockKey)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

// A failed create must free the lock without caching anything, so the
// client can retry with the same key.
func TestLeaveHandler_Create_FailureFreesLockWithoutCaching(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, rmock := redismock.NewClientMock()

	svc := &stubLeaveService{
		createFn: func(context.Context, string, string, leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap
		},
	}
	h := leave.NewHandlerWithRedis(svc, rdb)

	cacheKey := "idemp:/leaves:u1:key-9"
	lockKey := cacheKey + ":lock"
	rmock.ExpectDel(lockKey).SetVal(1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, err := json.Marshal(leave.CreateLeaveRequest{
		LeaveType: "ANNUAL",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("organization_id", "org-1")
	c.Set("user_id", "u1")
	c.Set("idempotency_cache_key", cacheKey)
	c.Set("idempotency_lock_key", lockKey)

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, rmock.ExpectationsWereMet())
}
