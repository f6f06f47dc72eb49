package organization

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Code        string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_organization_code"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
	UpdatedAt   time.Time `gorm:"not null;default:now()"`
}

func (Organization) TableName() string {
	return "organizations"
}

// Settings is the single per-organization configuration row, created
// together with the organization and removed in its deletion cascade.
type Settings struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Timezone          string    `gorm:"type:varchar(64);not null;default:'UTC'"`
	WorkWeekStart     string    `gorm:"type:varchar(12);not null;default:'MONDAY'"`
	AnnualLeaveDays   int       `gorm:"not null;default:20"`
	SickLeaveDays     int       `gorm:"not null;default:10"`
	PersonalLeaveDays int       `gorm:"not null;default:5"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Settings) TableName() string {
	return "organization_settings"
}
