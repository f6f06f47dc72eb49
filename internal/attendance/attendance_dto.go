package attendance

type RecordAttendanceRequest struct {
	UserID     string  `json:"user_id" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Status     string  `json:"status" binding:"required"`
	CheckInAt  *string `json:"check_in_at"`
	CheckOutAt *string `json:"check_out_at"`
	Notes      string  `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	CheckInAt      *string `json:"check_in_at,omitempty"`
	CheckOutAt     *string `json:"check_out_at,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	RecordedByID   string  `json:"recorded_by_id"`
	OrganizationID string  `json:"organization_id"`
}
