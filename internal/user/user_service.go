package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"
	usererrors "go-hrms/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID string, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]UserResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (UserResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

// Create validates the role and password before anything touches the
// store; an unknown role must never leave a partial row behind.
func (s *service) Create(ctx context.Context, organizationID string, req CreateUserRequest) (UserResponse, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidOrganizationID
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	if len(req.Password) < minPasswordLength {
		return UserResponse{}, usererrors.ErrInvalidPassword
	}

	departmentID, err := parseOptionalUUID(req.DepartmentID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	teamID, err := parseOptionalUUID(req.TeamID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	managerID, err := parseOptionalUUID(req.ManagerID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	hrID, err := parseOptionalUUID(req.HRID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create user hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:                uuid.New(),
		Email:             req.Email,
		Password:          string(hashed),
		Name:              req.Name,
		Role:              string(role),
		IsActive:          true,
		OrganizationID:    orgUUID,
		DepartmentID:      departmentID,
		TeamID:            teamID,
		ManagerAssignedID: managerID,
		HRAssignedID:      hrID,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create user begin tx failed", zap.Error(tx.Error))
		return UserResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueCreatedEvent(ctx, tx, u); err != nil {
		s.logger.Error("create user outbox failed", zap.Error(err))
		return UserResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create user commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("create user success",
		zap.String("user_id", u.ID.String()),
		zap.String("organization_id", organizationID),
		zap.String("role", u.Role),
	)
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]UserResponse, error) {
	users, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateUserRequest) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	// Role is validated before the row is loaded so a bad request
	// cannot end in a partial update.
	var newRole *domain.Role
	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidRole
		}
		newRole = &role
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UserResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if newRole != nil {
		u.Role = string(*newRole)
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.DepartmentID != nil {
		deptID, err := parseOptionalUUID(req.DepartmentID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidUserID
		}
		u.DepartmentID = deptID
	}
	if req.TeamID != nil {
		teamID, err := parseOptionalUUID(req.TeamID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidUserID
		}
		u.TeamID = teamID
	}
	if req.ManagerID != nil {
		managerID, err := parseOptionalUUID(req.ManagerID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidUserID
		}
		u.ManagerAssignedID = managerID
	}
	if req.HRID != nil {
		hrID, err := parseOptionalUUID(req.HRID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidUserID
		}
		u.HRAssignedID = hrID
	}

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}

	if _, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, organizationID, id); err != nil {
		s.logger.Error("delete user failed", zap.String("user_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete user success",
		zap.String("user_id", id),
		zap.String("organization_id", organizationID),
	)
	return nil
}

func (s *service) enqueueCreatedEvent(ctx context.Context, tx *gorm.DB, u *User) error {
	event := events.UserCreatedEvent{
		UserID:         u.ID.String(),
		OrganizationID: u.OrganizationID.String(),
		Email:          u.Email,
		Role:           u.Role,
		CreatedAt:      time.Now().UTC(),
	}
	if u.DepartmentID != nil {
		event.DepartmentID = u.DepartmentID.String()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxTx := s.outbox.WithTx(tx)
	return outboxTx.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "user",
		AggregateID:   u.ID.String(),
		EventType:     "user.created",
		Topic:         events.UserCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:             u.ID.String(),
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		IsActive:       u.IsActive,
		LastLogin:      u.LastLogin,
		OrganizationID: u.OrganizationID.String(),
	}
	if u.DepartmentID != nil {
		v := u.DepartmentID.String()
		resp.DepartmentID = &v
	}
	if u.TeamID != nil {
		v := u.TeamID.String()
		resp.TeamID = &v
	}
	if u.ManagerAssignedID != nil {
		v := u.ManagerAssignedID.String()
		resp.ManagerID = &v
	}
	if u.HRAssignedID != nil {
		v := u.HRAssignedID.String()
		resp.HRID = &v
	}
	return resp
}
