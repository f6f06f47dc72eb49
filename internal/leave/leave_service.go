package leave

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/events"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/organization"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// UnpaidBalanceSentinel marks leave types with no tracked entitlement.
const UnpaidBalanceSentinel = -1

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID, userID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, organizationID, userID string) ([]LeaveResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (LeaveDetailResponse, error)
	Approve(ctx context.Context, organizationID, id, approverID string, approverRole domain.Role, req DecideLeaveRequest) (LeaveResponse, error)
	Reject(ctx context.Context, organizationID, id, approverID string, approverRole domain.Role, req DecideLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, organizationID, id, requesterID string) (LeaveResponse, error)
	Balance(ctx context.Context, organizationID, userID string, year int) (BalanceResponse, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	orgRepo organization.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	orgRepo organization.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, orgRepo: orgRepo, outbox: outbox, logger: l}
}

// Create rejects the request when any non-cancelled leave of the same
// user touches the requested period. The overlap check and the insert
// run in one transaction so two concurrent requests cannot both pass.
func (s *service) Create(ctx context.Context, organizationID, userID string, req CreateLeaveRequest) (LeaveResponse, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidOrganizationID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidUserID
	}
	if !ValidLeaveType(req.LeaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDate
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(tx.Error))
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlaps, err := qtx.HasOverlappingPeriod(ctx, organizationID, userID, start, end)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlaps {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	request := &LeaveRequest{
		ID:             uuid.New(),
		UserID:         userUUID,
		OrganizationID: orgUUID,
		LeaveType:      req.LeaveType,
		StartDate:      start,
		EndDate:        end,
		DaysCount:      inclusiveDays(start, end),
		Reason:         req.Reason,
		Status:         StatusPending,
	}

	if err := qtx.Create(ctx, request); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_request_id", request.ID.String()),
		zap.String("user_id", userID),
		zap.String("leave_type", req.LeaveType),
	)
	return mapToResponse(*request), nil
}

func (s *service) GetAll(ctx context.Context, organizationID, userID string) ([]LeaveResponse, error) {
	requests, err := s.repo.FindAllByOrganization(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}

	res := make([]LeaveResponse, len(requests))
	for i, r := range requests {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (LeaveDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveDetailResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	request, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveDetailResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveDetailResponse{}, err
	}

	approvals, err := s.repo.FindApprovals(ctx, id)
	if err != nil {
		return LeaveDetailResponse{}, err
	}

	detail := LeaveDetailResponse{
		LeaveResponse: mapToResponse(*request),
		Approvals:     make([]ApprovalResponse, len(approvals)),
	}
	for i, a := range approvals {
		detail.Approvals[i] = ApprovalResponse{
			ID:           a.ID.String(),
			ApproverID:   a.ApproverID.String(),
			ApproverRole: a.ApproverRole,
			Decision:     a.Decision,
			Comment:      a.Comment,
			DecidedAt:    a.DecidedAt.Format(time.RFC3339),
		}
	}
	return detail, nil
}

func (s *service) Approve(ctx context.Context, organizationID, id, approverID string, approverRole domain.Role, req DecideLeaveRequest) (LeaveResponse, error) {
	return s.decide(ctx, organizationID, id, approverID, approverRole, StatusApproved, req.Comment)
}

func (s *service) Reject(ctx context.Context, organizationID, id, approverID string, approverRole domain.Role, req DecideLeaveRequest) (LeaveResponse, error) {
	return s.decide(ctx, organizationID, id, approverID, approverRole, StatusRejected, req.Comment)
}

// decide moves a pending request to its terminal state, appends the
// audit row and queues the decision event, all in one transaction. A
// request that is no longer pending cannot be decided again.
func (s *service) decide(ctx context.Context, organizationID, id, approverID string, approverRole domain.Role, status, comment string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidUserID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(tx.Error))
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if request.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotPending
	}

	decidedAt := time.Now().UTC()
	request.Status = status
	if err := qtx.Update(ctx, request); err != nil {
		s.logger.Error("decide leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	approval := &LeaveApproval{
		ID:             uuid.New(),
		LeaveRequestID: request.ID,
		ApproverID:     approverUUID,
		ApproverRole:   approverRole.String(),
		Decision:       status,
		Comment:        comment,
		DecidedAt:      decidedAt,
	}
	if err := qtx.CreateApproval(ctx, approval); err != nil {
		s.logger.Error("decide leave audit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.enqueueDecidedEvent(ctx, tx, request, approverID, approverRole, decidedAt); err != nil {
		s.logger.Error("decide leave outbox failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("decide leave success",
		zap.String("leave_request_id", id),
		zap.String("status", status),
		zap.String("approver_id", approverID),
	)
	return mapToResponse(*request), nil
}

// Cancel is the requester's own exit: only a still-pending request may
// be withdrawn, and only by the user who filed it.
func (s *service) Cancel(ctx context.Context, organizationID, id, requesterID string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if request.UserID.String() != requesterID {
		return LeaveResponse{}, leaveerrors.ErrNotRequestOwner
	}
	if request.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotPending
	}

	request.Status = StatusCancelled
	if err := qtx.Update(ctx, request); err != nil {
		s.logger.Error("cancel leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("cancel leave success",
		zap.String("leave_request_id", id),
		zap.String("user_id", requesterID),
	)
	return mapToResponse(*request), nil
}

// Balance reports per-type remaining entitlement for the given year.
// Entitlements come from the organization settings; unpaid leave has no
// entitlement and reports the sentinel instead.
func (s *service) Balance(ctx context.Context, organizationID, userID string, year int) (BalanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidUserID
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	settings, err := s.orgRepo.FindSettings(ctx, organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BalanceResponse{}, leaveerrors.ErrInvalidOrganizationID
		}
		return BalanceResponse{}, err
	}

	entitlements := []struct {
		leaveType   string
		entitlement int
	}{
		{TypeAnnual, settings.AnnualLeaveDays},
		{TypeSick, settings.SickLeaveDays},
		{TypePersonal, settings.PersonalLeaveDays},
		{TypeUnpaid, UnpaidBalanceSentinel},
	}

	res := BalanceResponse{
		UserID:  userID,
		Year:    year,
		Entries: make([]BalanceEntry, 0, len(entitlements)),
	}
	for _, e := range entitlements {
		used, err := s.repo.SumApprovedDaysByType(ctx, organizationID, userID, e.leaveType, year)
		if err != nil {
			return BalanceResponse{}, err
		}

		entry := BalanceEntry{
			LeaveType:   e.leaveType,
			Entitlement: e.entitlement,
			Used:        used,
			Remaining:   e.entitlement - used,
		}
		if entry.Remaining < 0 {
			entry.Remaining = 0
		}
		if e.entitlement == UnpaidBalanceSentinel {
			entry.Remaining = UnpaidBalanceSentinel
		}
		res.Entries = append(res.Entries, entry)
	}
	return res, nil
}

func (s *service) enqueueDecidedEvent(ctx context.Context, tx *gorm.DB, request *LeaveRequest, approverID string, approverRole domain.Role, decidedAt time.Time) error {
	event := events.LeaveDecidedEvent{
		LeaveRequestID: request.ID.String(),
		OrganizationID: request.OrganizationID.String(),
		UserID:         request.UserID.String(),
		ApproverID:     approverID,
		ApproverRole:   approverRole.String(),
		LeaveType:      request.LeaveType,
		Status:         request.Status,
		StartDate:      request.StartDate.Format(dateLayout),
		EndDate:        request.EndDate.Format(dateLayout),
		DecidedAt:      decidedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxTx := s.outbox.WithTx(tx)
	return outboxTx.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   request.ID.String(),
		EventType:     "leave.decided",
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// inclusiveDays counts both endpoints: a one-day leave has start==end.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func mapToResponse(r LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:             r.ID.String(),
		UserID:         r.UserID.String(),
		OrganizationID: r.OrganizationID.String(),
		LeaveType:      r.LeaveType,
		StartDate:      r.StartDate.Format(dateLayout),
		EndDate:        r.EndDate.Format(dateLayout),
		DaysCount:      r.DaysCount,
		Reason:         r.Reason,
		Status:         r.Status,
	}
}
