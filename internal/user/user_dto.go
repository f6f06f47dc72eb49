package user

import "time"

type CreateUserRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Role         string  `json:"role" binding:"required"`
	DepartmentID *string `json:"department_id"`
	TeamID       *string `json:"team_id"`
	ManagerID    *string `json:"manager_id"`
	HRID         *string `json:"hr_id"`
}

type UpdateUserRequest struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	IsActive     *bool   `json:"is_active"`
	DepartmentID *string `json:"department_id"`
	TeamID       *string `json:"team_id"`
	ManagerID    *string `json:"manager_id"`
	HRID         *string `json:"hr_id"`
}

type UserResponse struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Role           string     `json:"role"`
	IsActive       bool       `json:"is_active"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	OrganizationID string     `json:"organization_id"`
	DepartmentID   *string    `json:"department_id,omitempty"`
	TeamID         *string    `json:"team_id,omitempty"`
	ManagerID      *string    `json:"manager_id,omitempty"`
	HRID           *string    `json:"hr_id,omitempty"`
}
