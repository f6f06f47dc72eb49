package domain

// Permission identifies one guarded operation on one resource.
type Permission struct {
	Resource string
	Action   string
}

// Actions
const (
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
)

// Resources
const (
	ResourceOrganization = "organization"
	ResourceDepartment   = "department"
	ResourceTeam         = "team"
	ResourceUser         = "user"
	ResourceAdmin        = "admin"
	ResourceAttendance   = "attendance"
	ResourceLeave        = "leave"
	ResourceNotification = "notification"
)

// PolicyMatrix is the single source of truth for which roles may perform
// which operation. Routes declare (resource, action) pairs and the
// enforcer looks the pair up here, so the allowed sets cannot drift
// between call sites.
var PolicyMatrix = map[Permission][]Role{
	{ResourceOrganization, ActionCreate}: {RoleSuperAdmin},
	{ResourceOrganization, ActionDelete}: {RoleSuperAdmin},
	{ResourceOrganization, ActionRead}:   {RoleSuperAdmin, RoleOrgAdmin},
	{ResourceOrganization, ActionUpdate}: {RoleSuperAdmin, RoleOrgAdmin},

	{ResourceDepartment, ActionRead}:   {RoleSuperAdmin, RoleOrgAdmin, RoleHR},
	{ResourceDepartment, ActionCreate}: {RoleSuperAdmin, RoleOrgAdmin},
	{ResourceDepartment, ActionUpdate}: {RoleSuperAdmin, RoleOrgAdmin},
	{ResourceDepartment, ActionDelete}: {RoleSuperAdmin},

	{ResourceTeam, ActionRead}:   {RoleSuperAdmin, RoleOrgAdmin, RoleHR, RoleManager},
	{ResourceTeam, ActionCreate}: {RoleHR},
	{ResourceTeam, ActionUpdate}: {RoleHR, RoleManager},
	{ResourceTeam, ActionDelete}: {RoleHR},

	{ResourceUser, ActionRead}:   {RoleSuperAdmin, RoleOrgAdmin, RoleHR, RoleManager},
	{ResourceUser, ActionCreate}: {RoleSuperAdmin, RoleOrgAdmin, RoleHR},
	{ResourceUser, ActionUpdate}: {RoleSuperAdmin, RoleOrgAdmin, RoleHR},
	{ResourceUser, ActionDelete}: {RoleSuperAdmin, RoleOrgAdmin},

	{ResourceAdmin, ActionRead}:   {RoleSuperAdmin},
	{ResourceAdmin, ActionCreate}: {RoleSuperAdmin},
	{ResourceAdmin, ActionUpdate}: {RoleSuperAdmin},
	{ResourceAdmin, ActionDelete}: {RoleSuperAdmin},

	{ResourceAttendance, ActionRead}:   {RoleSuperAdmin, RoleOrgAdmin, RoleHR, RoleManager, RoleEmployee},
	{ResourceAttendance, ActionCreate}: {RoleHR, RoleManager},
	{ResourceAttendance, ActionUpdate}: {RoleHR, RoleManager},

	{ResourceLeave, ActionRead}:    {RoleSuperAdmin, RoleOrgAdmin, RoleHR, RoleManager, RoleEmployee},
	{ResourceLeave, ActionCreate}:  {RoleSuperAdmin, RoleOrgAdmin, RoleHR, RoleManager, RoleEmployee},
	{ResourceLeave, ActionUpdate}:  {RoleSuperAdmin, RoleOrgAdmin, RoleHR, RoleManager, RoleEmployee},
	{ResourceLeave, ActionApprove}: {RoleManager, RoleHR},

	{ResourceNotification, ActionRead}:   {RoleSuperAdmin, RoleOrgAdmin, RoleHR, RoleManager, RoleEmployee},
	{ResourceNotification, ActionUpdate}: {RoleSuperAdmin, RoleOrgAdmin, RoleHR, RoleManager, RoleEmployee},
}
