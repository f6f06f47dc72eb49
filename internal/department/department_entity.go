package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Code           string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_department_code"`
	Description    string     `gorm:"type:text"`
	Location       string     `gorm:"type:varchar(255)"`
	IsActive       bool       `gorm:"not null;default:true"`
	ParentID       *uuid.UUID `gorm:"type:uuid;index"`
	HeadID         *uuid.UUID `gorm:"type:uuid"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Department) TableName() string {
	return "departments"
}
