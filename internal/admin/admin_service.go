package admin

import (
	"context"
	"errors"

	adminerrors "go-hrms/internal/admin/errors"
	"go-hrms/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID string, req CreateAdminRequest) (AdminResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]AdminResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (AdminResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateAdminRequest) (AdminResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateAdminRequest) (AdminResponse, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return AdminResponse{}, adminerrors.ErrInvalidOrganizationID
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil || !role.IsAdministrative() {
		return AdminResponse{}, adminerrors.ErrNotAdministrativeRole
	}
	if len(req.Password) < minPasswordLength {
		return AdminResponse{}, adminerrors.ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create admin hash password failed", zap.Error(err))
		return AdminResponse{}, err
	}

	a := &Admin{
		ID:             uuid.New(),
		Email:          req.Email,
		Password:       string(hashed),
		Name:           req.Name,
		Role:           string(role),
		IsActive:       true,
		OrganizationID: orgUUID,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("create admin persist failed", zap.Error(err))
		return AdminResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create admin success",
		zap.String("admin_id", a.ID.String()),
		zap.String("organization_id", organizationID),
		zap.String("role", a.Role),
	)
	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]AdminResponse, error) {
	admins, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	res := make([]AdminResponse, len(admins))
	for i, a := range admins {
		res[i] = mapToResponse(a)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (AdminResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AdminResponse{}, adminerrors.ErrInvalidAdminID
	}

	a, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdminResponse{}, adminerrors.ErrAdminNotFound
		}
		return AdminResponse{}, err
	}
	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateAdminRequest) (AdminResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AdminResponse{}, adminerrors.ErrInvalidAdminID
	}

	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil || !role.IsAdministrative() {
			return AdminResponse{}, adminerrors.ErrNotAdministrativeRole
		}
	}

	a, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdminResponse{}, adminerrors.ErrAdminNotFound
		}
		return AdminResponse{}, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Role != nil {
		role, _ := domain.ParseRole(*req.Role)
		a.Role = string(role)
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("update admin persist failed", zap.String("admin_id", id), zap.Error(err))
		return AdminResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return adminerrors.ErrInvalidAdminID
	}

	if _, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adminerrors.ErrAdminNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, organizationID, id); err != nil {
		s.logger.Error("delete admin failed", zap.String("admin_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete admin success",
		zap.String("admin_id", id),
		zap.String("organization_id", organizationID),
	)
	return nil
}

func mapToResponse(a Admin) AdminResponse {
	return AdminResponse{
		ID:             a.ID.String(),
		Email:          a.Email,
		Name:           a.Name,
		Role:           a.Role,
		IsActive:       a.IsActive,
		LastLogin:      a.LastLogin,
		OrganizationID: a.OrganizationID.String(),
	}
}
