package attendance

import (
	"context"
	"time"

	"go-hrms/internal/tenant"

	"gorm.io/gorm"
)

// ListFilter narrows List results; zero values mean "no constraint".
type ListFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
	FindByUserAndDate(ctx context.Context, organizationID, userID string, day time.Time) (*Attendance, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Attendance, error)
	List(ctx context.Context, organizationID string, filter ListFilter) ([]Attendance, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindByUserAndDate(ctx context.Context, organizationID, userID string, day time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("user_id = ? AND attendance_date = ?", userID, day.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) List(ctx context.Context, organizationID string, filter ListFilter) ([]Attendance, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(organizationID))
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.From != nil {
		q = q.Where("attendance_date >= ?", filter.From.Format("2006-01-02"))
	}
	if filter.To != nil {
		q = q.Where("attendance_date <= ?", filter.To.Format("2006-01-02"))
	}

	var records []Attendance
	err := q.Order("attendance_date DESC").Find(&records).Error
	return records, err
}
