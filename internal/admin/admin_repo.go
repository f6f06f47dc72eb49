package admin

import (
	"context"
	"time"

	"go-hrms/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=admin_repo.go -destination=mock/admin_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Admin) error
	FindAllByOrganization(ctx context.Context, organizationID string) ([]Admin, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	Update(ctx context.Context, a *Admin) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, organizationID, id string) error
	DeleteAllByOrganization(ctx context.Context, organizationID string) error
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

func (r *repository) Create(ctx context.Context, a *Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]Admin, error) {
	var admins []Admin
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("name ASC").
		Find(&admins).Error
	return admins, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&a).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Admin) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Admin{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&Admin{}, "id = ?", id).Error
}

func (r *repository) DeleteAllByOrganization(ctx context.Context, organizationID string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&Admin{}).Error
}
