package organization_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/admin"
	"go-hrms/internal/department"
	"go-hrms/internal/organization"
	organizationerrors "go-hrms/internal/organization/errors"
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

// opLog records cascade steps across all fake repositories so tests can
// assert their relative order.
type opLog struct {
	ops []string
}

func (l *opLog) add(op string) { l.ops = append(l.ops, op) }

type fakeOrgRepo struct {
	log      *opLog
	org      *organization.Organization
	settings *organization.Settings
}

func (f *fakeOrgRepo) WithTx(tx *gorm.DB) organization.Repository { return f }

func (f *fakeOrgRepo) Create(_ context.Context, org *organization.Organization) error {
	f.log.add("organization.create")
	f.org = org
	return nil
}

func (f *fakeOrgRepo) FindAll(context.Context) ([]organization.Organization, error) {
	return nil, nil
}

func (f *fakeOrgRepo) FindByID(_ context.Context, id string) (*organization.Organization, error) {
	if f.org != nil && f.org.ID.String() == id {
		return f.org, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrgRepo) Update(context.Context, *organization.Organization) error { return nil }

func (f *fakeOrgRepo) Delete(_ context.Context, _ string) error {
	f.log.add("organization.delete")
	return nil
}

func (f *fakeOrgRepo) CreateSettings(_ context.Context, s *organization.Settings) error {
	f.log.add("settings.create")
	f.settings = s
	return nil
}

func (f *fakeOrgRepo) UpdateSettings(context.Context, *organization.Settings) error { return nil }

func (f *fakeOrgRepo) FindSettings(_ context.Context, _ string) (*organization.Settings, error) {
	if f.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.settings, nil
}

func (f *fakeOrgRepo) DeleteSettings(_ context.Context, _ string) error {
	f.log.add("settings.delete")
	return nil
}

type fakeDeptRepo struct {
	log   *opLog
	depts []department.Department
}

func (f *fakeDeptRepo) WithTx(tx *gorm.DB) department.Repository { return f }

func (f *fakeDeptRepo) Create(context.Context, *department.Department) error { return nil }

func (f *fakeDeptRepo) FindAllByOrganization(context.Context, string) ([]department.Department, error) {
	return f.depts, nil
}

func (f *fakeDeptRepo) FindByIDAndOrganization(context.Context, string, string) (*department.Department, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDeptRepo) Update(context.Context, *department.Department) error { return nil }

func (f *fakeDeptRepo) DetachChildren(_ context.Context, _, parentID string) error {
	f.log.add("department.detach")
	return nil
}

func (f *fakeDeptRepo) Delete(_ context.Context, _, _ string) error {
	f.log.add("department.delete")
	return nil
}

type fakeUserRepo struct {
	log *opLog
}

func (f *fakeUserRepo) WithTx(tx *gorm.DB) user.Repository           { return f }
func (f *fakeUserRepo) Create(context.Context, *user.User) error     { return nil }
func (f *fakeUserRepo) Update(context.Context, *user.User) error     { return nil }
func (f *fakeUserRepo) Delete(context.Context, string, string) error { return nil }

func (f *fakeUserRepo) FindAllByOrganization(context.Context, string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByIDAndOrganization(context.Context, string, string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByEmail(context.Context, string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateLastLogin(context.Context, string, time.Time) error { return nil }

func (f *fakeUserRepo) DeleteAllByOrganization(context.Context, string) error {
	f.log.add("users.delete_all")
	return nil
}

type fakeAdminRepo struct {
	log *opLog
}

func (f *fakeAdminRepo) WithTx(tx *gorm.DB) admin.Repository          { return f }
func (f *fakeAdminRepo) Create(context.Context, *admin.Admin) error   { return nil }
func (f *fakeAdminRepo) Update(context.Context, *admin.Admin) error   { return nil }
func (f *fakeAdminRepo) Delete(context.Context, string, string) error { return nil }

func (f *fakeAdminRepo) FindAllByOrganization(context.Context, string) ([]admin.Admin, error) {
	return nil, nil
}

func (f *fakeAdminRepo) FindByIDAndOrganization(context.Context, string, string) (*admin.Admin, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAdminRepo) FindByEmail(context.Context, string) (*admin.Admin, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAdminRepo) UpdateLastLogin(context.Context, string, time.Time) error { return nil }

func (f *fakeAdminRepo) DeleteAllByOrganization(context.Context, string) error {
	f.log.add("admins.delete_all")
	return nil
}

func newCascadeService(t *testing.T, gdb *gorm.DB, log *opLog, orgRepo *fakeOrgRepo, deptRepo *fakeDeptRepo) organization.Service {
	t.Helper()
	return organization.NewService(gdb, orgRepo, deptRepo, &fakeUserRepo{log: log}, &fakeAdminRepo{log: log})
}

func TestService_Create_OrganizationAndSettingsInOneTransaction(t *testing.T) {
	gdb, smock := newTestDB(t)
	log := &opLog{}

	smock.ExpectBegin()
	smock.ExpectCommit()

	orgRepo := &fakeOrgRepo{log: log}
	svc := newCascadeService(t, gdb, log, orgRepo, &fakeDeptRepo{log: log})

	resp, err := svc.Create(context.Background(), organization.CreateOrganizationRequest{
		Name: "Acme",
		Code: "ACME",
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme", resp.Name)
	assert.Equal(t, []string{"organization.create", "settings.create"}, log.ops)
	require.NotNil(t, orgRepo.settings)
	assert.Equal(t, orgRepo.org.ID, orgRepo.settings.OrganizationID)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestService_Delete_CascadesInOrder(t *testing.T) {
	gdb, smock := newTestDB(t)
	log := &opLog{}

	org := &organization.Organization{ID: uuid.New(), Name: "Acme", Code: "ACME"}
	depts := []department.Department{
		{ID: uuid.New(), Name: "Engineering", OrganizationID: org.ID},
		{ID: uuid.New(), Name: "Sales", OrganizationID: org.ID},
	}

	smock.ExpectBegin()
	smock.ExpectCommit()

	orgRepo := &fakeOrgRepo{log: log, org: org}
	svc := newCascadeService(t, gdb, log, orgRepo, &fakeDeptRepo{log: log, depts: depts})

	err := svc.Delete(context.Background(), org.ID.String())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"department.detach", "department.delete",
		"department.detach", "department.delete",
		"users.delete_all",
		"admins.delete_all",
		"settings.delete",
		"organization.delete",
	}, log.ops)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestService_Delete_UnknownOrganizationRollsBack(t *testing.T) {
	gdb, smock := newTestDB(t)
	log := &opLog{}

	smock.ExpectBegin()
	smock.ExpectRollback()

	svc := newCascadeService(t, gdb, log, &fakeOrgRepo{log: log}, &fakeDeptRepo{log: log})

	err := svc.Delete(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, organizationerrors.ErrOrganizationNotFound)
	assert.Empty(t, log.ops)
}
