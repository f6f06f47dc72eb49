package organization

type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
}

type UpdateOrganizationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateSettingsRequest struct {
	Timezone          *string `json:"timezone"`
	WorkWeekStart     *string `json:"work_week_start"`
	AnnualLeaveDays   *int    `json:"annual_leave_days"`
	SickLeaveDays     *int    `json:"sick_leave_days"`
	PersonalLeaveDays *int    `json:"personal_leave_days"`
}

type OrganizationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type SettingsResponse struct {
	Timezone          string `json:"timezone"`
	WorkWeekStart     string `json:"work_week_start"`
	AnnualLeaveDays   int    `json:"annual_leave_days"`
	SickLeaveDays     int    `json:"sick_leave_days"`
	PersonalLeaveDays int    `json:"personal_leave_days"`
}
