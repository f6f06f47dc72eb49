package organization

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, org *Organization) error
	FindAll(ctx context.Context) ([]Organization, error)
	FindByID(ctx context.Context, id string) (*Organization, error)
	Update(ctx context.Context, org *Organization) error
	Delete(ctx context.Context, id string) error

	CreateSettings(ctx context.Context, settings *Settings) error
	UpdateSettings(ctx context.Context, settings *Settings) error
	FindSettings(ctx context.Context, organizationID string) (*Settings, error)
	DeleteSettings(ctx context.Context, organizationID string) error
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

func (r *repository) Create(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	err := r.db.WithContext(ctx).Order("name ASC").Find(&orgs).Error
	return orgs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	return &org, err
}

func (r *repository) Update(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Organization{}, "id = ?", id).Error
}

func (r *repository) CreateSettings(ctx context.Context, settings *Settings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *repository) UpdateSettings(ctx context.Context, settings *Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *repository) FindSettings(ctx context.Context, organizationID string) (*Settings, error) {
	var settings Settings
	err := r.db.WithContext(ctx).
		First(&settings, "organization_id = ?", organizationID).Error
	return &settings, err
}

func (r *repository) DeleteSettings(ctx context.Context, organizationID string) error {
	return r.db.WithContext(ctx).
		Delete(&Settings{}, "organization_id = ?", organizationID).Error
}
