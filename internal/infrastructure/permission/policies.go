package permission

import "github.com/codearena/arena-admin/internal/shared/constants"

// Resources and actions checked by the permission middleware.
const (
	ResourceUser        = "user"
	ResourceLanguage    = "language"
	ResourcePlan        = "plan"
	ResourceTransaction = "transaction"
	ResourceSolution    = "solution"
	ResourcePost        = "post"
	ResourceComment     = "comment"
	ResourcePrompt      = "prompt"
	ResourceReport      = "report"
	ResourceDashboard   = "dashboard"
	ResourceAudit       = "audit"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionVote   = "vote"
)

type policy struct {
	Role     string
	Resource string
	Action   string
}

// Moderators curate community content; admins additionally manage the catalogue,
// accounts and billing data.
var defaultPolicies = []policy{
	{constants.RoleModerator, ResourceDashboard, ActionRead},
	{constants.RoleModerator, ResourceUser, ActionRead},
	{constants.RoleModerator, ResourceLanguage, ActionRead},
	{constants.RoleModerator, ResourcePlan, ActionRead},
	{constants.RoleModerator, ResourcePrompt, ActionRead},
	{constants.RoleModerator, ResourceSolution, ActionRead},
	{constants.RoleModerator, ResourceSolution, ActionDelete},
	{constants.RoleModerator, ResourceSolution, ActionVote},
	{constants.RoleModerator, ResourcePost, ActionRead},
	{constants.RoleModerator, ResourcePost, ActionUpdate},
	{constants.RoleModerator, ResourcePost, ActionDelete},
	{constants.RoleModerator, ResourceComment, ActionRead},
	{constants.RoleModerator, ResourceComment, ActionDelete},
	{constants.RoleModerator, ResourceComment, ActionVote},
	{constants.RoleModerator, ResourceReport, ActionRead},
	{constants.RoleModerator, ResourceReport, ActionUpdate},

	{constants.RoleAdmin, ResourceUser, ActionUpdate},
	{constants.RoleAdmin, ResourceUser, ActionDelete},
	{constants.RoleAdmin, ResourceLanguage, ActionCreate},
	{constants.RoleAdmin, ResourceLanguage, ActionUpdate},
	{constants.RoleAdmin, ResourceLanguage, ActionDelete},
	{constants.RoleAdmin, ResourcePlan, ActionCreate},
	{constants.RoleAdmin, ResourcePlan, ActionUpdate},
	{constants.RoleAdmin, ResourcePlan, ActionDelete},
	{constants.RoleAdmin, ResourcePrompt, ActionCreate},
	{constants.RoleAdmin, ResourcePrompt, ActionUpdate},
	{constants.RoleAdmin, ResourcePrompt, ActionDelete},
	{constants.RoleAdmin, ResourceTransaction, ActionRead},
	{constants.RoleAdmin, ResourceAudit, ActionRead},
}

var roleInheritance = [][2]string{
	{constants.RoleAdmin, constants.RoleModerator},
}
