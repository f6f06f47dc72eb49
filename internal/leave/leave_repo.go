package leave

import (
	"context"
	"time"

	"go-hrms/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, req *LeaveRequest) error
	FindAllByOrganization(ctx context.Context, organizationID, userID string) ([]LeaveRequest, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*LeaveRequest, error)
	Update(ctx context.Context, req *LeaveRequest) error
	HasOverlappingPeriod(ctx context.Context, organizationID, userID string, start, end time.Time) (bool, error)

	CreateApproval(ctx context.Context, approval *LeaveApproval) error
	FindApprovals(ctx context.Context, leaveRequestID string) ([]LeaveApproval, error)
	SumApprovedDaysByType(ctx context.Context, organizationID, userID, leaveType string, year int) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID, userID string) ([]LeaveRequest, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(organizationID))
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var requests []LeaveRequest
	err := q.Order("start_date DESC").Find(&requests).Error
	return requests, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) Update(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// HasOverlappingPeriod treats both bounds as inclusive: two spans
// overlap unless one ends strictly before the other starts. Cancelled
// requests do not block the period.
func (r *repository) HasOverlappingPeriod(ctx context.Context, organizationID, userID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(organizationID)).
		Where("user_id = ?", userID).
		Where("status <> ?", StatusCancelled).
		Where("NOT (end_date < ? OR start_date > ?)",
			start.Format("2006-01-02"), end.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateApproval(ctx context.Context, approval *LeaveApproval) error {
	return r.db.WithContext(ctx).Create(approval).Error
}

func (r *repository) FindApprovals(ctx context.Context, leaveRequestID string) ([]LeaveApproval, error) {
	var approvals []LeaveApproval
	err := r.db.WithContext(ctx).
		Where("leave_request_id = ?", leaveRequestID).
		Order("decided_at ASC").
		Find(&approvals).Error
	return approvals, err
}

func (r *repository) SumApprovedDaysByType(ctx context.Context, organizationID, userID, leaveType string, year int) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Select("COALESCE(SUM(days_count), 0)").
		Scopes(tenant.Scope(organizationID)).
		Where("user_id = ?", userID).
		Where("leave_type = ?", leaveType).
		Where("status = ?", StatusApproved).
		Where("EXTRACT(YEAR FROM start_date) = ?", year).
		Scan(&total).Error
	return total, err
}
