package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrms/internal/middleware"
	"go-hrms/internal/user"
	usererrors "go-hrms/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	createFn  func(ctx context.Context, organizationID string, req user.CreateUserRequest) (user.UserResponse, error)
	getAllFn  func(ctx context.Context, organizationID string) ([]user.UserResponse, error)
	getByIDFn func(ctx context.Context, organizationID, id string) (user.UserResponse, error)
	updateFn  func(ctx context.Context, organizationID, id string, req user.UpdateUserRequest) (user.UserResponse, error)
	deleteFn  func(ctx context.Context, organizationID, id string) error
}

func (s *stubService) Create(ctx context.Context, organizationID string, req user.CreateUserRequest) (user.UserResponse, error) {
	return s.createFn(ctx, organizationID, req)
}

func (s *stubService) GetAll(ctx context.Context, organizationID string) ([]user.UserResponse, error) {
	return s.getAllFn(ctx, organizationID)
}

func (s *stubService) GetByID(ctx context.Context, organizationID, id string) (user.UserResponse, error) {
	return s.getByIDFn(ctx, organizationID, id)
}

func (s *stubService) Update(ctx context.Context, organizationID, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	return s.updateFn(ctx, organizationID, id, req)
}

func (s *stubService) Delete(ctx context.Context, organizationID, id string) error {
	return s.deleteFn(ctx, organizationID, id)
}

func newTestContext(t *testing.T, method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("organization_id", "org-1")
	return c, w
}

func TestUserHandler_Create_Success(t *testing.T) {
	svc := &stubService{
		createFn: func(_ context.Context, organizationID string, req user.CreateUserRequest) (user.UserResponse, error) {
			assert.Equal(t, "org-1", organizationID)
			return user.UserResponse{Email: req.Email, Role: req.Role, IsActive: true}, nil
		},
	}
	h := user.NewHandler(svc)

	c, w := newTestContext(t, http.MethodPost, "/users", user.CreateUserRequest{
		Email:    "jane@acme.test",
		Password: "correct-horse",
		Name:     "Jane Doe",
		Role:     "EMPLOYEE",
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Success bool              `json:"success"`
		Data    user.UserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "jane@acme.test", envelope.Data.Email)
}

func TestUserHandler_Create_ValidationError(t *testing.T) {
	h := user.NewHandler(&stubService{})

	c, w := newTestContext(t, http.MethodPost, "/users", map[string]string{
		"email": "not-an-email",
	})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_Create_ServiceError(t *testing.T) {
	svc := &stubService{
		createFn: func(context.Context, string, user.CreateUserRequest) (user.UserResponse, error) {
			return user.UserResponse{}, usererrors.ErrUserAlreadyExists
		},
	}
	h := user.NewHandler(svc)

	c, w := newTestContext(t, http.MethodPost, "/users", user.CreateUserRequest{
		Email:    "jane@acme.test",
		Password: "correct-horse",
		Name:     "Jane Doe",
		Role:     "EMPLOYEE",
	})
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	svc := &stubService{
		deleteFn: func(context.Context, string, string) error {
			return usererrors.ErrUserNotFound
		},
	}
	h := user.NewHandler(svc)

	c, w := newTestContext(t, http.MethodDelete, "/users/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Successful creates behind the idempotency middleware must fill the
// response cache and release the in-flight lock, so a client retry is
// served from cache instead of hitting 409 or re-running the insert.
func TestUserHandler_Create_IdempotentRetryReplaysResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, rmock := redismock.NewClientMock()

	creates := 0
	svc := &stubService{
		createFn: func(_ context.Context, _ string, req user.CreateUserRequest) (user.UserResponse, error) {
			creates++
			return user.UserResponse{Email: req.Email, Role: req.Role, IsActive: true}, nil
		},
	}
	h := user.NewHandlerWithRedis(svc, rdb)

	_, r := gin.CreateTestContext(httptest.NewRecorder())
	r.POST("/users",
		func(c *gin.Context) {
			c.Set("organization_id", "org-1")
			c.Set("user_id", "u1")
		},
		middleware.Idempotency(rdb),
		h.Create,
	)

	cacheKey := "idemp:/users:u1:key-1"
	lockKey := cacheKey + ":lock"

	// First attempt: miss, lock, handler runs, cache filled, lock freed.
	rmock.ExpectGet(cacheKey).RedisNil()
	rmock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	rmock.Regexp().ExpectSet(cacheKey, `.*`, 24*time.Hour).SetVal("OK")
	rmock.ExpectDel(lockKey).SetVal(1)

	// Retry: served from cache, handler never runs again.
	cached, err := json.Marshal(user.UserResponse{Email: "jane@acme.test", Role: "EMPLOYEE", IsActive: true})
	require.NoError(t, err)
	rmock.ExpectGet(cacheKey).SetVal(string(cached))

	body, err := json.Marshal(user.CreateUserRequest{
		Email:    "jane@acme.test",
		Password: "correct-horse",
		Name:     "Jane Doe",
		Role:     "EMPLOYEE",
	})
	require.NoError(t, err)

	post := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)
		return w
	}

	first := post()
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, 1, creates)

	retry := post()
	assert.Equal(t, http.StatusOK, retry.Code)
	assert.Contains(t, retry.Body.String(), "jane@acme.test")
	assert.Equal(t, 1, creates)
	assert.NoError(t, rmock.ExpectationsWereMet())
}
