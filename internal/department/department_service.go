package department

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	departmenterrors "go-hrms/internal/department/errors"
	"go-hrms/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const treeCacheKeyPrefix = "departments:tree:"
const treeCacheTTL = 5 * time.Minute

func TreeCacheKey(organizationID string) string {
	return treeCacheKeyPrefix + organizationID
}

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID string, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (DepartmentResponse, error)
	GetTree(ctx context.Context, organizationID string) ([]*TreeNode, error)
	Update(ctx context.Context, organizationID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateDepartmentRequest) (DepartmentResponse, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidOrganizationID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create department begin tx failed", zap.Error(tx.Error))
		return DepartmentResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var parentID *uuid.UUID
	if req.ParentID != nil && *req.ParentID != "" {
		pid, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return DepartmentResponse{}, departmenterrors.ErrInvalidParentID
		}
		// Parent must exist in the same organization.
		if _, err := qtx.FindByIDAndOrganization(ctx, organizationID, pid.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return DepartmentResponse{}, departmenterrors.ErrParentNotFound
			}
			return DepartmentResponse{}, err
		}
		parentID = &pid
	}

	var headID *uuid.UUID
	if req.HeadID != nil && *req.HeadID != "" {
		hid, err := uuid.Parse(*req.HeadID)
		if err != nil {
			return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
		}
		headID = &hid
	}

	code := req.Code
	if code == "" {
		nextVal, err := s.counter.GetNextValue(ctx, organizationID, "department_code")
		if err != nil {
			s.logger.Error("create department generate code failed", zap.Error(err))
			return DepartmentResponse{}, err
		}
		code = fmt.Sprintf("DEP-%04d", nextVal)
	}

	dept := &Department{
		ID:             uuid.New(),
		Name:           req.Name,
		Code:           code,
		Description:    req.Description,
		Location:       req.Location,
		IsActive:       true,
		ParentID:       parentID,
		HeadID:         headID,
		OrganizationID: orgUUID,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidateTreeCache(ctx, organizationID)
	s.logger.Info("create department success",
		zap.String("department_id", dept.ID.String()),
		zap.String("organization_id", organizationID),
	)
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (DepartmentResponse, error) {
	dept, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		return DepartmentResponse{}, err
	}
	return mapToResponse(*dept), nil
}

// GetTree serves the hierarchy from cache when possible. Cache misses
// are deduplicated with singleflight so concurrent requests trigger a
// single rebuild.
func (s *service) GetTree(ctx context.Context, organizationID string) ([]*TreeNode, error) {
	cacheKey := TreeCacheKey(organizationID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var tree []*TreeNode
			if err := json.Unmarshal([]byte(cached), &tree); err == nil {
				return tree, nil
			}
		}
	}

	result, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		depts, err := s.repo.FindAllByOrganization(ctx, organizationID)
		if err != nil {
			return nil, err
		}

		tree := BuildTree(depts)

		if s.rdb != nil {
			if payload, err := json.Marshal(tree); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, treeCacheTTL).Err(); err != nil {
					s.logger.Warn("tree cache set failed",
						zap.String("organization_id", organizationID),
						zap.Error(err),
					)
				}
			}
		}
		return tree, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*TreeNode), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update department begin tx failed", zap.Error(tx.Error))
		return DepartmentResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		return DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	if req.Location != nil {
		dept.Location = *req.Location
	}
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}
	if req.HeadID != nil {
		if *req.HeadID == "" {
			dept.HeadID = nil
		} else {
			hid, err := uuid.Parse(*req.HeadID)
			if err != nil {
				return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
			}
			dept.HeadID = &hid
		}
	}
	if req.ParentID != nil {
		if *req.ParentID == "" {
			dept.ParentID = nil
		} else {
			pid, err := uuid.Parse(*req.ParentID)
			if err != nil {
				return DepartmentResponse{}, departmenterrors.ErrInvalidParentID
			}
			if pid == dept.ID {
				return DepartmentResponse{}, departmenterrors.ErrParentCycle
			}
			if _, err := qtx.FindByIDAndOrganization(ctx, organizationID, pid.String()); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return DepartmentResponse{}, departmenterrors.ErrParentNotFound
				}
				return DepartmentResponse{}, err
			}
			if err := s.ensureNoCycle(ctx, qtx, organizationID, dept.ID, pid); err != nil {
				return DepartmentResponse{}, err
			}
			dept.ParentID = &pid
		}
	}

	if err := qtx.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed",
			zap.String("department_id", id),
			zap.Error(err),
		)
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidateTreeCache(ctx, organizationID)
	return mapToResponse(*dept), nil
}

// Delete detaches direct children first and removes the department row
// second, inside one transaction. Children are kept, not cascaded.
func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete department begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndOrganization(ctx, organizationID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return departmenterrors.ErrDepartmentNotFound
		}
		return err
	}

	if err := qtx.DetachChildren(ctx, organizationID, id); err != nil {
		s.logger.Error("delete department detach children failed",
			zap.String("department_id", id),
			zap.Error(err),
		)
		return err
	}

	if err := qtx.Delete(ctx, organizationID, id); err != nil {
		s.logger.Error("delete department persist failed",
			zap.String("department_id", id),
			zap.Error(err),
		)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete department commit failed", zap.Error(err))
		return err
	}

	s.invalidateTreeCache(ctx, organizationID)
	s.logger.Info("delete department success",
		zap.String("department_id", id),
		zap.String("organization_id", organizationID),
	)
	return nil
}

// ensureNoCycle rejects a parent change that would make dept its own
// ancestor by walking the proposed parent chain upward.
func (s *service) ensureNoCycle(ctx context.Context, repo Repository, organizationID string, deptID, newParentID uuid.UUID) error {
	depts, err := repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return err
	}

	parents := make(map[string]string, len(depts))
	for _, d := range depts {
		if d.ParentID != nil {
			parents[d.ID.String()] = d.ParentID.String()
		}
	}

	if formsCycle(deptID.String(), newParentID.String(), parents) {
		return departmenterrors.ErrParentCycle
	}
	return nil
}

func (s *service) invalidateTreeCache(ctx context.Context, organizationID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, TreeCacheKey(organizationID)).Err(); err != nil {
		s.logger.Warn("tree cache invalidation failed",
			zap.String("organization_id", organizationID),
			zap.Error(err),
		)
	}
}

func mapToResponse(dept Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:             dept.ID.String(),
		Name:           dept.Name,
		Code:           dept.Code,
		Description:    dept.Description,
		Location:       dept.Location,
		IsActive:       dept.IsActive,
		OrganizationID: dept.OrganizationID.String(),
	}
	if dept.ParentID != nil {
		v := dept.ParentID.String()
		resp.ParentID = &v
	}
	if dept.HeadID != nil {
		v := dept.HeadID.String()
		resp.HeadID = &v
	}
	return resp
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
