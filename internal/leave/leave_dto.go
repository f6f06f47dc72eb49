package leave

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

type DecideLeaveRequest struct {
	Comment string `json:"comment"`
}

type LeaveResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	LeaveType      string `json:"leave_type"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	DaysCount      int    `json:"days_count"`
	Reason         string `json:"reason,omitempty"`
	Status         string `json:"status"`
}

type ApprovalResponse struct {
	ID           string `json:"id"`
	ApproverID   string `json:"approver_id"`
	ApproverRole string `json:"approver_role"`
	Decision     string `json:"decision"`
	Comment      string `json:"comment,omitempty"`
	DecidedAt    string `json:"decided_at"`
}

type LeaveDetailResponse struct {
	LeaveResponse
	Approvals []ApprovalResponse `json:"approvals"`
}

// BalanceEntry reports remaining entitlement for one leave type.
// Unpaid leave is untracked; its remaining value is the sentinel -1.
type BalanceEntry struct {
	LeaveType   string `json:"leave_type"`
	Entitlement int    `json:"entitlement"`
	Used        int    `json:"used"`
	Remaining   int    `json:"remaining"`
}

type BalanceResponse struct {
	UserID  string         `json:"user_id"`
	Year    int            `json:"year"`
	Entries []BalanceEntry `json:"entries"`
}
