package team

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Description    string     `gorm:"type:text"`
	IsActive       bool       `gorm:"not null;default:true"`
	DepartmentID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	LeadID         *uuid.UUID `gorm:"type:uuid"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Team) TableName() string {
	return "teams"
}
