package notification

import (
	"time"

	"github.com/google/uuid"
)

const TypeLeaveDecision = "LEAVE_DECISION"

type Notification struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	Type           string    `gorm:"type:varchar(40);not null"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Body           string    `gorm:"type:text"`
	IsRead         bool      `gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt      time.Time
	ReadAt         *time.Time
}

func (Notification) TableName() string {
	return "notifications"
}
