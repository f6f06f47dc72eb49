package events

import "time"

const LeaveDecidedTopic = "hrms.leave.decision.v1"

// LeaveDecidedEvent is emitted (through the outbox) whenever a leave
// request is approved or rejected.
type LeaveDecidedEvent struct {
	LeaveRequestID string    `json:"leave_request_id"`
	OrganizationID string    `json:"organization_id"`
	UserID         string    `json:"user_id"`
	ApproverID     string    `json:"approver_id"`
	ApproverRole   string    `json:"approver_role"`
	LeaveType      string    `json:"leave_type"`
	Status         string    `json:"status"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	DecidedAt      time.Time `json:"decided_at"`
}
