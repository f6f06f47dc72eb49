package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

const (
	TypeAnnual   = "ANNUAL"
	TypeSick     = "SICK"
	TypePersonal = "PERSONAL"
	TypeUnpaid   = "UNPAID"
)

// LeaveRequest covers an inclusive [StartDate, EndDate] span. Two
// requests of the same user whose spans touch on even a single day are
// overlapping.
type LeaveRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveType      string    `gorm:"type:varchar(20);not null"`
	StartDate      time.Time `gorm:"type:date;not null"`
	EndDate        time.Time `gorm:"type:date;not null"`
	DaysCount      int       `gorm:"not null"`
	Reason         string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// LeaveApproval is the append-only decision audit. Rows are inserted,
// never updated or deleted, one per decision taken.
type LeaveApproval struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveRequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	ApproverID     uuid.UUID `gorm:"type:uuid;not null"`
	ApproverRole   string    `gorm:"type:varchar(50);not null"`
	Decision       string    `gorm:"type:varchar(20);not null"`
	Comment        string    `gorm:"type:text"`
	DecidedAt      time.Time `gorm:"type:timestamptz;not null"`
	CreatedAt      time.Time
}

func (LeaveApproval) TableName() string {
	return "leave_approvals"
}

func ValidLeaveType(s string) bool {
	switch s {
	case TypeAnnual, TypeSick, TypePersonal, TypeUnpaid:
		return true
	default:
		return false
	}
}
