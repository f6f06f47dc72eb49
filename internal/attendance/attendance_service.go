package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, organizationID, recordedByID string, req RecordAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, organizationID string, filter ListFilter) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (AttendanceResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	userRepo user.Repository
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, userRepo: userRepo, logger: l}
}

// Record upserts the single attendance row for (user, day). A second
// submission for the same day overwrites status and times wholesale;
// last write wins.
func (s *service) Record(ctx context.Context, organizationID, recordedByID string, req RecordAttendanceRequest) (AttendanceResponse, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidOrganizationID
	}
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}
	recorderUUID, err := uuid.Parse(recordedByID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}
	if !ValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}

	checkIn, err := parseOptionalTime(req.CheckInAt)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	checkOut, err := parseOptionalTime(req.CheckOutAt)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}

	if _, err := s.userRepo.FindByIDAndOrganization(ctx, organizationID, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrUserNotFound
		}
		return AttendanceResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("record attendance begin tx failed", zap.Error(tx.Error))
		return AttendanceResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByUserAndDate(ctx, organizationID, req.UserID, day)
	switch {
	case err == nil:
		record.Status = req.Status
		record.CheckInAt = checkIn
		record.CheckOutAt = checkOut
		record.Notes = req.Notes
		record.RecordedByID = recorderUUID
		if err := qtx.Update(ctx, record); err != nil {
			s.logger.Error("record attendance overwrite failed", zap.Error(err))
			return AttendanceResponse{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = &Attendance{
			ID:             uuid.New(),
			UserID:         userUUID,
			AttendanceDate: day,
			Status:         req.Status,
			CheckInAt:      checkIn,
			CheckOutAt:     checkOut,
			Notes:          req.Notes,
			RecordedByID:   recorderUUID,
			OrganizationID: orgUUID,
		}
		if err := qtx.Create(ctx, record); err != nil {
			s.logger.Error("record attendance create failed", zap.Error(err))
			return AttendanceResponse{}, err
		}
	default:
		return AttendanceResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("record attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("record attendance success",
		zap.String("user_id", req.UserID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)
	return mapToResponse(*record), nil
}

func (s *service) List(ctx context.Context, organizationID string, filter ListFilter) ([]AttendanceResponse, error) {
	records, err := s.repo.List(ctx, organizationID, filter)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(records))
	for i, r := range records {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	record, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}
	return mapToResponse(*record), nil
}

func parseOptionalTime(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		UserID:         a.UserID.String(),
		Date:           a.AttendanceDate.Format(dateLayout),
		Status:         a.Status,
		Notes:          a.Notes,
		RecordedByID:   a.RecordedByID.String(),
		OrganizationID: a.OrganizationID.String(),
	}
	if a.CheckInAt != nil {
		v := a.CheckInAt.Format(time.RFC3339)
		resp.CheckInAt = &v
	}
	if a.CheckOutAt != nil {
		v := a.CheckOutAt.Format(time.RFC3339)
		resp.CheckOutAt = &v
	}
	return resp
}
