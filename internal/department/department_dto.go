package department

type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	ParentID    *string `json:"parent_id"`
	HeadID      *string `json:"head_id"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	IsActive    *bool   `json:"is_active"`
	ParentID    *string `json:"parent_id"`
	HeadID      *string `json:"head_id"`
}

type DepartmentResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	Description    string  `json:"description,omitempty"`
	Location       string  `json:"location,omitempty"`
	IsActive       bool    `json:"is_active"`
	ParentID       *string `json:"parent_id,omitempty"`
	HeadID         *string `json:"head_id,omitempty"`
	OrganizationID string  `json:"organization_id"`
}

// TreeNode is a department plus its recursively nested children,
// siblings sorted by name at every level.
type TreeNode struct {
	DepartmentResponse
	Children []*TreeNode `json:"children"`
}
