package notification_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/notification"
	notificationerrors "go-hrms/internal/notification/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifRepo struct {
	created []*notification.Notification
	read    []string
}

func (f *fakeNotifRepo) Create(_ context.Context, n *notification.Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotifRepo) FindAllByUser(context.Context, string, string) ([]notification.Notification, error) {
	out := make([]notification.Notification, len(f.created))
	for i, n := range f.created {
		out[i] = *n
	}
	return out, nil
}

func (f *fakeNotifRepo) MarkRead(_ context.Context, _, _, id string) error {
	f.read = append(f.read, id)
	return nil
}

func TestRecordLeaveDecision_MaterializesRow(t *testing.T) {
	repo := &fakeNotifRepo{}
	svc := notification.NewService(repo)

	orgID := uuid.New()
	userID := uuid.New()
	err := svc.RecordLeaveDecision(context.Background(), events.LeaveDecidedEvent{
		LeaveRequestID: uuid.New().String(),
		OrganizationID: orgID.String(),
		UserID:         userID.String(),
		ApproverRole:   "MANAGER",
		LeaveType:      "ANNUAL",
		Status:         "APPROVED",
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-05",
		DecidedAt:      time.Now().UTC(),
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, orgID, n.OrganizationID)
	assert.Equal(t, userID, n.UserID)
	assert.Equal(t, notification.TypeLeaveDecision, n.Type)
	assert.Contains(t, n.Body, "APPROVED")
	assert.False(t, n.IsRead)
}

func TestRecordLeaveDecision_RejectsMalformedEvent(t *testing.T) {
	repo := &fakeNotifRepo{}
	svc := notification.NewService(repo)

	err := svc.RecordLeaveDecision(context.Background(), events.LeaveDecidedEvent{
		OrganizationID: "not-a-uuid",
		UserID:         uuid.New().String(),
	})

	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestMarkRead_RejectsBadID(t *testing.T) {
	repo := &fakeNotifRepo{}
	svc := notification.NewService(repo)

	err := svc.MarkRead(context.Background(), uuid.New().String(), uuid.New().String(), "nope")

	assert.ErrorIs(t, err, notificationerrors.ErrInvalidNotificationID)
	assert.Empty(t, repo.read)
}
