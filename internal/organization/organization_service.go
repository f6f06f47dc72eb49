package organization

import (
	"context"
	"errors"

	"go-hrms/internal/admin"
	"go-hrms/internal/department"
	organizationerrors "go-hrms/internal/organization/errors"
	"go-hrms/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error)
	GetAll(ctx context.Context) ([]OrganizationResponse, error)
	GetByID(ctx context.Context, id string) (OrganizationResponse, error)
	Update(ctx context.Context, id string, req UpdateOrganizationRequest) (OrganizationResponse, error)
	Delete(ctx context.Context, id string) error

	GetSettings(ctx context.Context, organizationID string) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, organizationID string, req UpdateSettingsRequest) (SettingsResponse, error)
}

type service struct {
	db             *gorm.DB
	repo           Repository
	departmentRepo department.Repository
	userRepo       user.Repository
	adminRepo      admin.Repository
	logger         *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	departmentRepo department.Repository,
	userRepo user.Repository,
	adminRepo admin.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		adminRepo:      adminRepo,
		logger:         l,
	}
}

func (s *service) Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create organization begin tx failed", zap.Error(tx.Error))
		return OrganizationResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	org := &Organization{
		ID:          uuid.New(),
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		IsActive:    true,
	}

	if err := qtx.Create(ctx, org); err != nil {
		s.logger.Error("create organization persist failed", zap.Error(err))
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	// Every organization gets exactly one settings row.
	settings := &Settings{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Timezone:       "UTC",
		WorkWeekStart:  "MONDAY",
	}
	if err := qtx.CreateSettings(ctx, settings); err != nil {
		s.logger.Error("create organization settings failed", zap.Error(err))
		return OrganizationResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create organization commit failed", zap.Error(err))
		return OrganizationResponse{}, err
	}

	s.logger.Info("create organization success",
		zap.String("organization_id", org.ID.String()),
		zap.String("code", org.Code),
	)
	return mapToResponse(*org), nil
}

func (s *service) GetAll(ctx context.Context) ([]OrganizationResponse, error) {
	orgs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]OrganizationResponse, len(orgs))
	for i, o := range orgs {
		res[i] = mapToResponse(o)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (OrganizationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OrganizationResponse{}, organizationerrors.ErrInvalidOrganizationID
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrganizationResponse{}, organizationerrors.ErrOrganizationNotFound
		}
		return OrganizationResponse{}, err
	}
	return mapToResponse(*org), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateOrganizationRequest) (OrganizationResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return OrganizationResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	org, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrganizationResponse{}, organizationerrors.ErrOrganizationNotFound
		}
		return OrganizationResponse{}, err
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Description != nil {
		org.Description = *req.Description
	}
	if req.IsActive != nil {
		org.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, org); err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return OrganizationResponse{}, err
	}

	return mapToResponse(*org), nil
}

// Delete runs the tenant teardown in one transaction, ordered so
// references are cleared before their referents disappear: every
// department goes through the detach-then-delete contract, then users,
// admins, the settings row, and finally the organization itself.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return organizationerrors.ErrInvalidOrganizationID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete organization begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	deptTx := s.departmentRepo.WithTx(tx)
	userTx := s.userRepo.WithTx(tx)
	adminTx := s.adminRepo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return organizationerrors.ErrOrganizationNotFound
		}
		return err
	}

	depts, err := deptTx.FindAllByOrganization(ctx, id)
	if err != nil {
		return err
	}
	for _, d := range depts {
		if err := deptTx.DetachChildren(ctx, id, d.ID.String()); err != nil {
			return err
		}
		if err := deptTx.Delete(ctx, id, d.ID.String()); err != nil {
			return err
		}
	}

	if err := userTx.DeleteAllByOrganization(ctx, id); err != nil {
		return err
	}
	if err := adminTx.DeleteAllByOrganization(ctx, id); err != nil {
		return err
	}
	if err := qtx.DeleteSettings(ctx, id); err != nil {
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete organization commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete organization success",
		zap.String("organization_id", id),
		zap.Int("departments_removed", len(depts)),
	)
	return nil
}

func (s *service) GetSettings(ctx context.Context, organizationID string) (SettingsResponse, error) {
	settings, err := s.repo.FindSettings(ctx, organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, organizationerrors.ErrOrganizationNotFound
		}
		return SettingsResponse{}, err
	}
	return mapSettingsToResponse(*settings), nil
}

func (s *service) UpdateSettings(ctx context.Context, organizationID string, req UpdateSettingsRequest) (SettingsResponse, error) {
	settings, err := s.repo.FindSettings(ctx, organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, organizationerrors.ErrOrganizationNotFound
		}
		return SettingsResponse{}, err
	}

	if req.Timezone != nil {
		settings.Timezone = *req.Timezone
	}
	if req.WorkWeekStart != nil {
		settings.WorkWeekStart = *req.WorkWeekStart
	}
	if req.AnnualLeaveDays != nil {
		settings.AnnualLeaveDays = *req.AnnualLeaveDays
	}
	if req.SickLeaveDays != nil {
		settings.SickLeaveDays = *req.SickLeaveDays
	}
	if req.PersonalLeaveDays != nil {
		settings.PersonalLeaveDays = *req.PersonalLeaveDays
	}

	if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		return SettingsResponse{}, err
	}

	return mapSettingsToResponse(*settings), nil
}

func mapToResponse(o Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          o.ID.String(),
		Name:        o.Name,
		Code:        o.Code,
		Description: o.Description,
		IsActive:    o.IsActive,
	}
}

func mapSettingsToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		Timezone:          s.Timezone,
		WorkWeekStart:     s.WorkWeekStart,
		AnnualLeaveDays:   s.AnnualLeaveDays,
		SickLeaveDays:     s.SickLeaveDays,
		PersonalLeaveDays: s.PersonalLeaveDays,
	}
}
