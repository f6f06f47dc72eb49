package user_test

import (
	"context"
	"testing"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/user"
	usererrors "go-hrms/internal/user/errors"
	"go-hrms/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
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

type fakeOutbox struct {
	created   []kafka.OutboxEvent
	createErr error
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(_ context.Context, event kafka.OutboxEvent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutbox) ListPending(context.Context, int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(context.Context, string) error           { return nil }
func (f *fakeOutbox) MarkFailed(context.Context, string, string) error { return nil }

func TestUserService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gdb, smock := newTestDB(t)
	repo := mock.NewMockRepository(ctrl)
	outbox := &fakeOutbox{}
	svc := user.NewService(gdb, repo, outbox)

	orgID := uuid.New().String()
	var persisted *user.User

	smock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *user.User) error {
			persisted = u
			return nil
		},
	)
	smock.ExpectCommit()

	resp, err := svc.Create(context.Background(), orgID, user.CreateUserRequest{
		Email:    "jane@acme.test",
		Password: "correct-horse",
		Name:     "Jane Doe",
		Role:     "employee",
	})

	require.NoError(t, err)
	require.NotNil(t, persisted)

	// Role is normalized and the password is stored hashed.
	assert.Equal(t, "EMPLOYEE", persisted.Role)
	assert.NotEqual(t, "correct-horse", persisted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.Password), []byte("correct-horse")))

	assert.Equal(t, "jane@acme.test", resp.Email)
	assert.Equal(t, orgID, resp.OrganizationID)
	assert.True(t, resp.IsActive)

	require.Len(t, outbox.created, 1)
	assert.Equal(t, events.UserCreatedTopic, outbox.created[0].Topic)
	assert.Equal(t, "user.created", outbox.created[0].EventType)
	assert.Equal(t, kafka.OutboxStatusPending, outbox.created[0].Status)

	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserService_Create_UnknownRoleTouchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gdb, smock := newTestDB(t)
	repo := mock.NewMockRepository(ctrl)
	outbox := &fakeOutbox{}
	svc := user.NewService(gdb, repo, outbox)

	_, err := svc.Create(context.Background(), uuid.New().String(), user.CreateUserRequest{
		Email:    "jane@acme.test",
		Password: "correct-horse",
		Name:     "Jane Doe",
		Role:     "WIZARD",
	})

	assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	assert.Empty(t, outbox.created)
	// No transaction was ever opened.
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserService_Create_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gdb, _ := newTestDB(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(gdb, repo, &fakeOutbox{})

	_, err := svc.Create(context.Background(), uuid.New().String(), user.CreateUserRequest{
		Email:    "jane@acme.test",
		Password: "short",
		Name:     "Jane Doe",
		Role:     "HR",
	})

	assert.ErrorIs(t, err, usererrors.ErrInvalidPassword)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gdb, smock := newTestDB(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(gdb, repo, &fakeOutbox{})

	smock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uq_user_email",
	})
	smock.ExpectRollback()

	_, err := svc.Create(context.Background(), uuid.New().String(), user.CreateUserRequest{
		Email:    "jane@acme.test",
		Password: "correct-horse",
		Name:     "Jane Doe",
		Role:     "EMPLOYEE",
	})

	assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserService_Update_UnknownRoleRejectedUpfront(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gdb, smock := newTestDB(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(gdb, repo, &fakeOutbox{})

	badRole := "CEO"
	_, err := svc.Update(context.Background(), uuid.New().String(), uuid.New().String(), user.UpdateUserRequest{
		Role: &badRole,
	})

	assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gdb, _ := newTestDB(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(gdb, repo, &fakeOutbox{})

	orgID := uuid.New().String()
	id := uuid.New().String()
	repo.EXPECT().FindByIDAndOrganization(gomock.Any(), orgID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), orgID, id)
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}

func TestUserService_GetByID_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gdb, _ := newTestDB(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(gdb, repo, &fakeOutbox{})

	_, err := svc.GetByID(context.Background(), uuid.New().String(), "not-a-uuid")
	assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
}
