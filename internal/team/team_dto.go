package team

type CreateTeamRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	DepartmentID string  `json:"department_id" binding:"required"`
	LeadID       *string `json:"lead_id"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
	LeadID      *string `json:"lead_id"`
}

// ReplaceMembersRequest carries the complete desired membership. The
// previous membership is discarded, not merged.
type ReplaceMembersRequest struct {
	MemberIDs []string `json:"member_ids" binding:"required"`
}

type TeamResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	IsActive       bool    `json:"is_active"`
	DepartmentID   string  `json:"department_id"`
	LeadID         *string `json:"lead_id,omitempty"`
	OrganizationID string  `json:"organization_id"`
}

type MemberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TeamWithMembersResponse struct {
	TeamResponse
	Members []MemberResponse `json:"members"`
}
