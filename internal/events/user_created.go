package events

import "time"

const UserCreatedTopic = "hrms.user.lifecycle.v1"

type UserCreatedEvent struct {
	UserID         string    `json:"user_id"`
	OrganizationID string    `json:"organization_id"`
	DepartmentID   string    `json:"department_id,omitempty"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}
