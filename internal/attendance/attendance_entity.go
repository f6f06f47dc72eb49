package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
)

// Attendance holds at most one row per user per calendar day; a second
// record for the same day overwrites the first.
type Attendance struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_user_day"`
	AttendanceDate time.Time  `gorm:"type:date;not null;uniqueIndex:uq_attendance_user_day"`
	Status         string     `gorm:"type:varchar(20);not null"`
	CheckInAt      *time.Time `gorm:"type:timestamptz"`
	CheckOutAt     *time.Time `gorm:"type:timestamptz"`
	Notes          string     `gorm:"type:text"`
	RecordedByID   uuid.UUID  `gorm:"type:uuid;not null"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	default:
		return false
	}
}
