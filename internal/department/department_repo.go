package department

import (
	"context"

	"go-hrms/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, dept *Department) error
	FindAllByOrganization(ctx context.Context, organizationID string) ([]Department, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	DetachChildren(ctx context.Context, organizationID, parentID string) error
	Delete(ctx context.Context, organizationID, id string) error
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

// DetachChildren nulls the parent reference of every direct child.
// Children survive the parent's deletion; they are never cascaded.
func (r *repository) DetachChildren(ctx context.Context, organizationID, parentID string) error {
	return r.db.WithContext(ctx).
		Model(&Department{}).
		Scopes(tenant.Scope(organizationID)).
		Where("parent_id = ?", parentID).
		Update("parent_id", nil).Error
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&Department{}, "id = ?", id).Error
}
