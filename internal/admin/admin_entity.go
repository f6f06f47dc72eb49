package admin

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an administrative account. Only administrative roles are
// accepted here; regular staff live in the users table.
type Admin struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_admin_email"`
	Password       string     `gorm:"type:varchar(255);not null"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Role           string     `gorm:"type:varchar(50);not null;default:'ORG_ADMIN'"`
	IsActive       bool       `gorm:"not null;default:true"`
	LastLogin      *time.Time `gorm:"type:timestamptz"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Admin) TableName() string {
	return "admins"
}
