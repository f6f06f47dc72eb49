package attendance_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/attendance"
	attendanceerrors "go-hrms/internal/attendance/errors"
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

// fakeRepo keys records by "userID/date".
type fakeRepo struct {
	records map[string]*attendance.Attendance
	created int
	updated int
}

func key(userID string, day time.Time) string {
	return userID + "/" + day.Format("2006-01-02")
}

func (f *fakeRepo) WithTx(tx *gorm.DB) attendance.Repository { return f }

func (f *fakeRepo) Create(_ context.Context, a *attendance.Attendance) error {
	f.created++
	f.records[key(a.UserID.String(), a.AttendanceDate)] = a
	return nil
}

func (f *fakeRepo) Update(_ context.Context, a *attendance.Attendance) error {
	f.updated++
	f.records[key(a.UserID.String(), a.AttendanceDate)] = a
	return nil
}

func (f *fakeRepo) FindByUserAndDate(_ context.Context, _, userID string, day time.Time) (*attendance.Attendance, error) {
	if a, ok := f.records[key(userID, day)]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByIDAndOrganization(context.Context, string, string) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) List(context.Context, string, attendance.ListFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

type fakeUserRepo struct {
	known map[string]bool
}

func (f *fakeUserRepo) WithTx(tx *gorm.DB) user.Repository { return f }

func (f *fakeUserRepo) Create(context.Context, *user.User) error { return nil }

func (f *fakeUserRepo) FindAllByOrganization(context.Context, string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByIDAndOrganization(_ context.Context, _, id string) (*user.User, error) {
	if f.known[id] {
		return &user.User{}, nil
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

func TestAttendanceService_Record_LastWriteWins(t *testing.T) {
	gdb, smock := newTestDB(t)

	repo := &fakeRepo{records: map[string]*attendance.Attendance{}}
	userID := uuid.New().String()
	users := &fakeUserRepo{known: map[string]bool{userID: true}}
	svc := attendance.NewService(gdb, repo, users)

	orgID := uuid.New().String()
	recorder := uuid.New().String()

	smock.ExpectBegin()
	smock.ExpectCommit()

	first, err := svc.Record(context.Background(), orgID, recorder, attendance.RecordAttendanceRequest{
		UserID: userID,
		Date:   "2026-08-03",
		Status: attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, first.Status)
	assert.Equal(t, 1, repo.created)

	smock.ExpectBegin()
	smock.ExpectCommit()

	second, err := svc.Record(context.Background(), orgID, recorder, attendance.RecordAttendanceRequest{
		UserID: userID,
		Date:   "2026-08-03",
		Status: attendance.StatusLate,
		Notes:  "train delay",
	})
	require.NoError(t, err)

	// Same (user, day): the row is overwritten, not duplicated.
	assert.Equal(t, attendance.StatusLate, second.Status)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.created)
	assert.Equal(t, 1, repo.updated)
	assert.Len(t, repo.records, 1)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestAttendanceService_Record_DifferentDaysAreSeparateRows(t *testing.T) {
	gdb, smock := newTestDB(t)

	repo := &fakeRepo{records: map[string]*attendance.Attendance{}}
	userID := uuid.New().String()
	users := &fakeUserRepo{known: map[string]bool{userID: true}}
	svc := attendance.NewService(gdb, repo, users)

	orgID := uuid.New().String()
	recorder := uuid.New().String()

	for _, day := range []string{"2026-08-03", "2026-08-04"} {
		smock.ExpectBegin()
		smock.ExpectCommit()
		_, err := svc.Record(context.Background(), orgID, recorder, attendance.RecordAttendanceRequest{
			UserID: userID,
			Date:   day,
			Status: attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, repo.created)
	assert.Equal(t, 0, repo.updated)
}

func TestAttendanceService_Record_RejectsBadStatus(t *testing.T) {
	gdb, _ := newTestDB(t)
	repo := &fakeRepo{records: map[string]*attendance.Attendance{}}
	svc := attendance.NewService(gdb, repo, &fakeUserRepo{known: map[string]bool{}})

	_, err := svc.Record(context.Background(), uuid.New().String(), uuid.New().String(), attendance.RecordAttendanceRequest{
		UserID: uuid.New().String(),
		Date:   "2026-08-03",
		Status: "SLEEPING",
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)
	assert.Empty(t, repo.records)
}

func TestAttendanceService_Record_RejectsUnknownUser(t *testing.T) {
	gdb, _ := newTestDB(t)
	repo := &fakeRepo{records: map[string]*attendance.Attendance{}}
	svc := attendance.NewService(gdb, repo, &fakeUserRepo{known: map[string]bool{}})

	_, err := svc.Record(context.Background(), uuid.New().String(), uuid.New().String(), attendance.RecordAttendanceRequest{
		UserID: uuid.New().String(),
		Date:   "2026-08-03",
		Status: attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrUserNotFound)
}

func TestAttendanceService_Record_RejectsBadDate(t *testing.T) {
	gdb, _ := newTestDB(t)
	userID := uuid.New().String()
	svc := attendance.NewService(gdb,
		&fakeRepo{records: map[string]*attendance.Attendance{}},
		&fakeUserRepo{known: map[string]bool{userID: true}},
	)

	_, err := svc.Record(context.Background(), uuid.New().String(), uuid.New().String(), attendance.RecordAttendanceRequest{
		UserID: userID,
		Date:   "03/08/2026",
		Status: attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
}
