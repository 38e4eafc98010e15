package access

import "taskboard-api/internal/domain"

// Action is a permission checked against a user's project role
type Action string

const (
	ActionViewProject   Action = "view_project"
	ActionCreateTask    Action = "create_task"
	ActionEditTask      Action = "edit_task"
	ActionMoveTask      Action = "move_task"
	ActionDeleteTask    Action = "delete_task"
	ActionManageColumns Action = "manage_columns"
	ActionManageOptions Action = "manage_options"
	ActionEditProject   Action = "edit_project"
	ActionInviteMembers Action = "invite_members"
	ActionManageMembers Action = "manage_members"
	ActionCloseProject  Action = "close_project"
	ActionDeleteProject Action = "delete_project"
)

// actionMinRole is the lowest role allowed to perform each action
var actionMinRole = map[Action]domain.ProjectRole{
	ActionViewProject:   domain.ProjectRoleRead,
	ActionCreateTask:    domain.ProjectRoleWrite,
	ActionEditTask:      domain.ProjectRoleWrite,
	ActionMoveTask:      domain.ProjectRoleWrite,
	ActionDeleteTask:    domain.ProjectRoleWrite,
	ActionManageColumns: domain.ProjectRoleAdmin,
	ActionManageOptions: domain.ProjectRoleAdmin,
	ActionEditProject:   domain.ProjectRoleAdmin,
	ActionInviteMembers: domain.ProjectRoleAdmin,
	ActionManageMembers: domain.ProjectRoleAdmin,
	ActionCloseProject:  domain.ProjectRoleOwner,
	ActionDeleteProject: domain.ProjectRoleOwner,
}

// Actions returns every known action
func Actions() []Action {
	actions := make([]Action, 0, len(actionMinRole))
	for action := range actionMinRole {
		actions = append(actions, action)
	}
	return actions
}

// MinRole returns the minimum role for an action, false for unknown actions
func MinRole(action Action) (domain.ProjectRole, bool) {
	role, ok := actionMinRole[action]
	return role, ok
}

// PermissionsFor precomputes the permission map for a role. Unknown roles get all false.
func PermissionsFor(role domain.ProjectRole) map[Action]bool {
	permissions := make(map[Action]bool, len(actionMinRole))
	for action, min := range actionMinRole {
		permissions[action] = role.AtLeast(min)
	}
	return permissions
}
