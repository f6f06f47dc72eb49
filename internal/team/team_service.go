package team

import (
	"context"
	"errors"

	"go-hrms/internal/department"
	teamerrors "go-hrms/internal/team/errors"
	"go-hrms/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID string, req CreateTeamRequest) (TeamResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]TeamResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (TeamWithMembersResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateTeamRequest) (TeamResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
	ReplaceMembers(ctx context.Context, organizationID, id string, req ReplaceMembersRequest) (TeamWithMembersResponse, error)
}

type service struct {
	db             *gorm.DB
	repo           Repository
	departmentRepo department.Repository
	userRepo       user.Repository
	logger         *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	departmentRepo department.Repository,
	userRepo user.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		logger:         l,
	}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateTeamRequest) (TeamResponse, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return TeamResponse{}, teamerrors.ErrInvalidOrganizationID
	}

	deptUUID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return TeamResponse{}, teamerrors.ErrInvalidDepartmentID
	}
	if _, err := s.departmentRepo.FindByIDAndOrganization(ctx, organizationID, deptUUID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, teamerrors.ErrDepartmentNotFound
		}
		return TeamResponse{}, err
	}

	var leadID *uuid.UUID
	if req.LeadID != nil && *req.LeadID != "" {
		lid, err := uuid.Parse(*req.LeadID)
		if err != nil {
			return TeamResponse{}, teamerrors.ErrInvalidMemberID
		}
		leadID = &lid
	}

	team := &Team{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		IsActive:       true,
		DepartmentID:   deptUUID,
		LeadID:         leadID,
		OrganizationID: orgUUID,
	}

	if err := s.repo.Create(ctx, team); err != nil {
		s.logger.Error("create team persist failed", zap.Error(err))
		return TeamResponse{}, err
	}

	s.logger.Info("create team success",
		zap.String("team_id", team.ID.String()),
		zap.String("organization_id", organizationID),
	)
	return mapToResponse(*team), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]TeamResponse, error) {
	teams, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	res := make([]TeamResponse, len(teams))
	for i, tm := range teams {
		res[i] = mapToResponse(tm)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (TeamWithMembersResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TeamWithMembersResponse{}, teamerrors.ErrInvalidTeamID
	}

	team, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamWithMembersResponse{}, teamerrors.ErrTeamNotFound
		}
		return TeamWithMembersResponse{}, err
	}

	members, err := s.repo.FindMembers(ctx, organizationID, id)
	if err != nil {
		return TeamWithMembersResponse{}, err
	}

	return mapToResponseWithMembers(*team, members), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateTeamRequest) (TeamResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TeamResponse{}, teamerrors.ErrInvalidTeamID
	}

	team, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, teamerrors.ErrTeamNotFound
		}
		return TeamResponse{}, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}
	if req.LeadID != nil {
		if *req.LeadID == "" {
			team.LeadID = nil
		} else {
			lid, err := uuid.Parse(*req.LeadID)
			if err != nil {
				return TeamResponse{}, teamerrors.ErrInvalidMemberID
			}
			team.LeadID = &lid
		}
	}

	if err := s.repo.Update(ctx, team); err != nil {
		s.logger.Error("update team persist failed", zap.String("team_id", id), zap.Error(err))
		return TeamResponse{}, err
	}

	return mapToResponse(*team), nil
}

// Delete releases current members before removing the team row so no
// user is left pointing at a dead team.
func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return teamerrors.ErrInvalidTeamID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete team begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndOrganization(ctx, organizationID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return teamerrors.ErrTeamNotFound
		}
		return err
	}

	if err := qtx.ClearMembers(ctx, organizationID, id); err != nil {
		return err
	}
	if err := qtx.Delete(ctx, organizationID, id); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete team commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete team success",
		zap.String("team_id", id),
		zap.String("organization_id", organizationID),
	)
	return nil
}

// ReplaceMembers swaps the whole membership atomically: the request is
// the complete desired roster, previous members not listed are
// released. Every candidate must exist in the organization and sit in
// the team's department before anything is written.
func (s *service) ReplaceMembers(ctx context.Context, organizationID, id string, req ReplaceMembersRequest) (TeamWithMembersResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TeamWithMembersResponse{}, teamerrors.ErrInvalidTeamID
	}
	for _, memberID := range req.MemberIDs {
		if _, err := uuid.Parse(memberID); err != nil {
			return TeamWithMembersResponse{}, teamerrors.ErrInvalidMemberID
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("replace members begin tx failed", zap.Error(tx.Error))
		return TeamWithMembersResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	userTx := s.userRepo.WithTx(tx)

	team, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamWithMembersResponse{}, teamerrors.ErrTeamNotFound
		}
		return TeamWithMembersResponse{}, err
	}

	for _, memberID := range req.MemberIDs {
		member, err := userTx.FindByIDAndOrganization(ctx, organizationID, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return TeamWithMembersResponse{}, teamerrors.ErrMemberNotFound
			}
			return TeamWithMembersResponse{}, err
		}
		if member.DepartmentID == nil || *member.DepartmentID != team.DepartmentID {
			return TeamWithMembersResponse{}, teamerrors.ErrMemberOutsideDepartment
		}
	}

	if err := qtx.ClearMembers(ctx, organizationID, id); err != nil {
		return TeamWithMembersResponse{}, err
	}
	if err := qtx.AssignMembers(ctx, organizationID, id, req.MemberIDs); err != nil {
		return TeamWithMembersResponse{}, err
	}

	members, err := qtx.FindMembers(ctx, organizationID, id)
	if err != nil {
		return TeamWithMembersResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("replace members commit failed", zap.Error(err))
		return TeamWithMembersResponse{}, err
	}

	s.logger.Info("replace members success",
		zap.String("team_id", id),
		zap.Int("member_count", len(req.MemberIDs)),
	)
	return mapToResponseWithMembers(*team, members), nil
}

func mapToResponse(t Team) TeamResponse {
	resp := TeamResponse{
		ID:             t.ID.String(),
		Name:           t.Name,
		Description:    t.Description,
		IsActive:       t.IsActive,
		DepartmentID:   t.DepartmentID.String(),
		OrganizationID: t.OrganizationID.String(),
	}
	if t.LeadID != nil {
		v := t.LeadID.String()
		resp.LeadID = &v
	}
	return resp
}

func mapToResponseWithMembers(t Team, members []user.User) TeamWithMembersResponse {
	res := TeamWithMembersResponse{
		TeamResponse: mapToResponse(t),
		Members:      make([]MemberResponse, len(members)),
	}
	for i, m := range members {
		res.Members[i] = MemberResponse{
			ID:    m.ID.String(),
			Name:  m.Name,
			Email: m.Email,
			Role:  m.Role,
		}
	}
	return res
}
