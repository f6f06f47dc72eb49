package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email             string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password          string     `gorm:"type:varchar(255);not null"`
	Name              string     `gorm:"type:varchar(255);not null"`
	Role              string     `gorm:"type:varchar(50);not null;default:'EMPLOYEE'"`
	IsActive          bool       `gorm:"not null;default:true"`
	LastLogin         *time.Time `gorm:"type:timestamptz"`
	OrganizationID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DepartmentID      *uuid.UUID `gorm:"type:uuid;index"`
	TeamID            *uuid.UUID `gorm:"type:uuid;index"`
	ManagerAssignedID *uuid.UUID `gorm:"type:uuid"`
	HRAssignedID      *uuid.UUID `gorm:"type:uuid;column:hr_assigned_id"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (User) TableName() string {
	return "users"
}
