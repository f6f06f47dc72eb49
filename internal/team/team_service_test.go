package team_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/team"
	teamerrors "go-hrms/internal/team/errors"
	"go-hrms/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, smock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gdb, smock
}

type fakeTeamRepo struct {
	team     *team.Team
	members  map[string][]user.User
	cleared  []string
	assigned [][]string
}

func (f *fakeTeamRepo) WithTx(tx *gorm.DB) team.Repository { return f }

func (f *fakeTeamRepo) Create(context.Context, *team.Team) error { return nil }

func (f *fakeTeamRepo) FindAllByOrganization(context.Context, string) ([]team.Team, error) {
	return nil, nil
}

func (f *fakeTeamRepo) FindByIDAndOrganization(_ context.Context, _, id string) (*team.Team, error) {
	if f.team != nil && f.team.ID.String() == id {
		return f.team, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTeamRepo) Update(context.Context, *team.Team) error { return nil }

func (f *fakeTeamRepo) Delete(context.Context, string, string) error { return nil }

func (f *fakeTeamRepo) FindMembers(_ context.Context, _, teamID string) ([]user.User, error) {
	return f.members[teamID], nil
}

func (f *fakeTeamRepo) ClearMembers(_ context.Context, _, teamID string) error {
	f.cleared = append(f.cleared, teamID)
	f.members[teamID] = nil
	return nil
}

func (f *fakeTeamRepo) AssignMembers(_ context.Context, _, teamID string, memberIDs []string) error {
	f.assigned = append(f.assigned, memberIDs)
	return nil
}

type fakeUserRepo struct {
	users map[string]*user.User
}

func (f *fakeUserRepo) WithTx(tx *gorm.DB) user.Repository { return f }

func (f *fakeUserRepo) Create(context.Context, *user.User) error { return nil }

func (f *fakeUserRepo) FindAllByOrganization(context.Context, string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByIDAndOrganization(_ context.Context, _, id string) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByEmail(context.Context, string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(context.Context, *user.User) error { return nil }

func (f *fakeUserRepo) UpdateLastLogin(context.Context, string, time.Time) error { return nil }

func (f *fakeUserRepo) Delete(context.Context, string, string) error { return nil }

func (f *fakeUserRepo) DeleteAllByOrganization(context.Context, string) error { return nil }

func memberOf(dept uuid.UUID) *user.User {
	return &user.User{ID: uuid.New(), DepartmentID: &dept}
}

func TestTeamService_ReplaceMembers_FullReplace(t *testing.T) {
	gdb, smock := newTestDB(t)

	orgID := uuid.New().String()
	deptID := uuid.New()
	tm := &team.Team{ID: uuid.New(), Name: "Platform", DepartmentID: deptID}

	a, b, c, d := memberOf(deptID), memberOf(deptID), memberOf(deptID), memberOf(deptID)

	repo := &fakeTeamRepo{
		team: tm,
		members: map[string][]user.User{
			tm.ID.String(): {*a, *b, *c},
		},
	}
	users := &fakeUserRepo{users: map[string]*user.User{
		a.ID.String(): a,
		b.ID.String(): b,
		c.ID.String(): c,
		d.ID.String(): d,
	}}

	svc := team.NewService(gdb, repo, nil, users)

	smock.ExpectBegin()
	smock.ExpectCommit()

	_, err := svc.ReplaceMembers(context.Background(), orgID, tm.ID.String(), team.ReplaceMembersRequest{
		MemberIDs: []string{b.ID.String(), d.ID.String()},
	})
	require.NoError(t, err)

	// Old roster is dropped entirely, then the new one assigned.
	assert.Equal(t, []string{tm.ID.String()}, repo.cleared)
	require.Len(t, repo.assigned, 1)
	assert.ElementsMatch(t, []string{b.ID.String(), d.ID.String()}, repo.assigned[0])
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestTeamService_ReplaceMembers_MemberOutsideDepartment(t *testing.T) {
	gdb, smock := newTestDB(t)

	orgID := uuid.New().String()
	tm := &team.Team{ID: uuid.New(), Name: "Platform", DepartmentID: uuid.New()}
	outsider := memberOf(uuid.New())

	repo := &fakeTeamRepo{team: tm, members: map[string][]user.User{}}
	users := &fakeUserRepo{users: map[string]*user.User{outsider.ID.String(): outsider}}
	svc := team.NewService(gdb, repo, nil, users)

	smock.ExpectBegin()
	smock.ExpectRollback()

	_, err := svc.ReplaceMembers(context.Background(), orgID, tm.ID.String(), team.ReplaceMembersRequest{
		MemberIDs: []string{outsider.ID.String()},
	})

	assert.ErrorIs(t, err, teamerrors.ErrMemberOutsideDepartment)
	assert.Empty(t, repo.cleared)
	assert.Empty(t, repo.assigned)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestTeamService_ReplaceMembers_UnknownMember(t *testing.T) {
	gdb, smock := newTestDB(t)

	orgID := uuid.New().String()
	tm := &team.Team{ID: uuid.New(), Name: "Platform", DepartmentID: uuid.New()}

	repo := &fakeTeamRepo{team: tm, members: map[string][]user.User{}}
	svc := team.NewService(gdb, repo, nil, &fakeUserRepo{users: map[string]*user.User{}})

	smock.ExpectBegin()
	smock.ExpectRollback()

	_, err := svc.ReplaceMembers(context.Background(), orgID, tm.ID.String(), team.ReplaceMembersRequest{
		MemberIDs: []string{uuid.New().String()},
	})

	assert.ErrorIs(t, err, teamerrors.ErrMemberNotFound)
	assert.Empty(t, repo.cleared)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestTeamService_ReplaceMembers_EmptyRosterClearsTeam(t *testing.T) {
	gdb, smock := newTestDB(t)

	orgID := uuid.New().String()
	tm := &team.Team{ID: uuid.New(), Name: "Platform", DepartmentID: uuid.New()}
	repo := &fakeTeamRepo{team: tm, members: map[string][]user.User{}}
	svc := team.NewService(gdb, repo, nil, &fakeUserRepo{users: map[string]*user.User{}})

	smock.ExpectBegin()
	smock.ExpectCommit()

	resp, err := svc.ReplaceMembers(context.Background(), orgID, tm.ID.String(), team.ReplaceMembersRequest{
		MemberIDs: []string{},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{tm.ID.String()}, repo.cleared)
	assert.Empty(t, resp.Members)
	assert.NoError(t, smock.ExpectationsWereMet())
}
