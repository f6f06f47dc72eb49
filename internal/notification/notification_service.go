package notification

import (
	"context"
	"fmt"
	"time"

	"go-hrms/internal/events"
	notificationerrors "go-hrms/internal/notification/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	RecordLeaveDecision(ctx context.Context, event events.LeaveDecidedEvent) error
	GetAllForUser(ctx context.Context, organizationID, userID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, organizationID, userID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) RecordLeaveDecision(ctx context.Context, event events.LeaveDecidedEvent) error {
	orgID, err := uuid.Parse(event.OrganizationID)
	if err != nil {
		return fmt.Errorf("invalid organization id in event: %w", err)
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id in event: %w", err)
	}

	n := &Notification{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         userID,
		Type:           TypeLeaveDecision,
		Title:          fmt.Sprintf("Leave request %s", event.Status),
		Body: fmt.Sprintf("Your %s leave from %s to %s was %s",
			event.LeaveType, event.StartDate, event.EndDate, event.Status),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("record leave decision failed",
			zap.String("leave_request_id", event.LeaveRequestID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("leave decision notification recorded",
		zap.String("notification_id", n.ID.String()),
		zap.String("user_id", event.UserID),
		zap.String("status", event.Status),
	)
	return nil
}

func (s *service) GetAllForUser(ctx context.Context, organizationID, userID string) ([]NotificationResponse, error) {
	rows, err := s.repo.FindAllByUser(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}

	res := make([]NotificationResponse, len(rows))
	for i, n := range rows {
		res[i] = mapToResponse(n)
	}
	return res, nil
}

func (s *service) MarkRead(ctx context.Context, organizationID, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}
	return s.repo.MarkRead(ctx, organizationID, userID, id)
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}
