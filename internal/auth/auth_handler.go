package auth

import (
	"net/http"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/request"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	accessCookieName  = "access_token"
	refreshCookieName = "refresh_token"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.deliverTokens(c, &resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	_ = c.ShouldBindJSON(&req)

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		if cookie, err := c.Cookie(refreshCookieName); err == nil {
			refreshToken = cookie
		}
	}
	if refreshToken == "" {
		writeServiceError(c, autherrors.ErrInvalidRefreshToken)
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.deliverTokens(c, &resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(accessCookieName, "", -1, "/", "", false, true)
	c.SetCookie(refreshCookieName, "", -1, "/", "", false, true)
	response.SuccessMessage(c, http.StatusOK, "Logged out", nil)
}

func (h *Handler) Me(c *gin.Context) {
	orgID := c.GetString("organization_id")
	userID := c.GetString("user_id")
	role := c.GetString("role")

	resp, err := h.service.GetMe(c.Request.Context(), orgID, userID, role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// deliverTokens moves tokens into HTTP-only cookies for web clients;
// mobile clients keep them in the response body.
func (h *Handler) deliverTokens(c *gin.Context, resp *LoginResponse) {
	clientType := request.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))
	if !request.IsWebClient(clientType) {
		return
	}

	c.SetCookie(accessCookieName, resp.Tokens.AccessToken, int(AccessTokenTTL.Seconds()), "/", "", false, true)
	c.SetCookie(refreshCookieName, resp.Tokens.RefreshToken, int(RefreshTokenTTL.Seconds()), "/", "", false, true)
	resp.Tokens.AccessToken = ""
	resp.Tokens.RefreshToken = ""
}
