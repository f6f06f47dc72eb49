package team

import (
	"context"

	"go-hrms/internal/tenant"
	"go-hrms/internal/user"

	"gorm.io/gorm"
)

//go:generate mockgen -source=team_repo.go -destination=mock/team_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, team *Team) error
	FindAllByOrganization(ctx context.Context, organizationID string) ([]Team, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Team, error)
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, organizationID, id string) error

	FindMembers(ctx context.Context, organizationID, teamID string) ([]user.User, error)
	ClearMembers(ctx context.Context, organizationID, teamID string) error
	AssignMembers(ctx context.Context, organizationID, teamID string, memberIDs []string) error
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

func (r *repository) Create(ctx context.Context, team *Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Team, error) {
	var team Team
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&team, "id = ?", id).Error
	return &team, err
}

func (r *repository) Update(ctx context.Context, team *Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&Team{}, "id = ?", id).Error
}

// Membership lives on the users table as a nullable team reference, so
// the member operations below write user rows, not a join table.

func (r *repository) FindMembers(ctx context.Context, organizationID, teamID string) ([]user.User, error) {
	var members []user.User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("team_id = ?", teamID).
		Order("name ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) ClearMembers(ctx context.Context, organizationID, teamID string) error {
	return r.db.WithContext(ctx).
		Model(&user.User{}).
		Scopes(tenant.Scope(organizationID)).
		Where("team_id = ?", teamID).
		Update("team_id", nil).Error
}

func (r *repository) AssignMembers(ctx context.Context, organizationID, teamID string, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&user.User{}).
		Scopes(tenant.Scope(organizationID)).
		Where("id IN ?", memberIDs).
		Update("team_id", teamID).Error
}
