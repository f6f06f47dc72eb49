package attendance

import (
	"net/http"
	"strconv"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
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

func (h *Handler) Record(c *gin.Context) {
	orgID := c.GetString("organization_id")
	recordedBy := c.GetString("user_id")

	var req RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Record(c.Request.Context(), orgID, recordedBy, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// List is role-scoped: employees only ever see their own records, the
// query filter is overridden for them.
func (h *Handler) List(c *gin.Context) {
	orgID := c.GetString("organization_id")

	filter := ListFilter{UserID: c.Query("user_id")}
	if c.GetString("role") == string(domain.RoleEmployee) {
		filter.UserID = c.GetString("user_id")
	}

	if from := c.Query("from"); from != "" {
		ts, err := time.Parse(dateLayout, from)
		if err != nil {
			writeServiceError(c, attendanceerrors.ErrInvalidDate)
			return
		}
		filter.From = &ts
	}
	if to := c.Query("to"); to != "" {
		ts, err := time.Parse(dateLayout, to)
		if err != nil {
			writeServiceError(c, attendanceerrors.ErrInvalidDate)
			return
		}
		filter.To = &ts
	}

	resp, err := h.service.List(c.Request.Context(), orgID, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
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
