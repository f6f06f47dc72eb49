package admin_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/admin"
	adminerrors "go-hrms/internal/admin/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn    func(ctx context.Context, a *admin.Admin) error
	findByIDFn  func(ctx context.Context, organizationID, id string) (*admin.Admin, error)
	deleteFn    func(ctx context.Context, organizationID, id string) error
	lastCreated *admin.Admin
}

func (f *fakeRepo) WithTx(tx *gorm.DB) admin.Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, a *admin.Admin) error {
	f.lastCreated = a
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeRepo) FindAllByOrganization(context.Context, string) ([]admin.Admin, error) {
	return nil, nil
}

func (f *fakeRepo) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*admin.Admin, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, organizationID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByEmail(context.Context, string) (*admin.Admin, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Update(context.Context, *admin.Admin) error { return nil }

func (f *fakeRepo) UpdateLastLogin(context.Context, string, time.Time) error { return nil }

func (f *fakeRepo) Delete(ctx context.Context, organizationID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, organizationID, id)
	}
	return nil
}

func (f *fakeRepo) DeleteAllByOrganization(context.Context, string) error { return nil }

func TestAdminService_Create_Success(t *testing.T) {
	repo := &fakeRepo{}
	svc := admin.NewService(repo)

	orgID := uuid.New().String()
	resp, err := svc.Create(context.Background(), orgID, admin.CreateAdminRequest{
		Email:    "root@acme.test",
		Password: "swordfish-42",
		Name:     "Root",
		Role:     "org_admin",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastCreated)
	assert.Equal(t, "ORG_ADMIN", resp.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.lastCreated.Password), []byte("swordfish-42")))
}

func TestAdminService_Create_RejectsNonAdministrativeRole(t *testing.T) {
	repo := &fakeRepo{}
	svc := admin.NewService(repo)

	_, err := svc.Create(context.Background(), uuid.New().String(), admin.CreateAdminRequest{
		Email:    "root@acme.test",
		Password: "swordfish-42",
		Name:     "Root",
		Role:     "EMPLOYEE",
	})

	assert.ErrorIs(t, err, adminerrors.ErrNotAdministrativeRole)
	assert.Nil(t, repo.lastCreated)
}

func TestAdminService_GetByID_NotFound(t *testing.T) {
	svc := admin.NewService(&fakeRepo{})

	_, err := svc.GetByID(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, adminerrors.ErrAdminNotFound)
}

func TestAdminService_Delete_InvalidID(t *testing.T) {
	svc := admin.NewService(&fakeRepo{})

	err := svc.Delete(context.Background(), uuid.New().String(), "nope")
	assert.ErrorIs(t, err, adminerrors.ErrInvalidAdminID)
}
