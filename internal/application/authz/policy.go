// Package authz holds the authorization policy: a closed table mapping each
// protected action to the set of roles allowed to perform it. The HTTP gate
// consults it instead of branching on role strings in handlers.
package authz

import "github.com/soprahr/leavedesk-api/internal/domain/entity"

// Action names a protected operation.
type Action string

const (
	ActionLeaveSubmit     Action = "leave.submit"
	ActionLeaveListOwn    Action = "leave.list_own"
	ActionLeaveListScoped Action = "leave.list_scoped"
	ActionLeaveReview     Action = "leave.review"
	ActionLeaveAttach     Action = "leave.attach"
	ActionLeavePDF        Action = "leave.pdf"
	ActionAuditView       Action = "audit.view"
	ActionDirectoryRead   Action = "directory.read"
	ActionDirectoryWrite  Action = "directory.write"
	ActionNotifications   Action = "notifications.own"
)

type roleSet map[entity.Role]bool

func roles(rs ...entity.Role) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = true
	}
	return set
}

var everyone = roles(entity.RoleEmployee, entity.RoleManager, entity.RoleHeadOfDepartement, entity.RoleAdmin)

// policy is the single source of truth for (role, action) decisions.
var policy = map[Action]roleSet{
	ActionLeaveSubmit:     everyone,
	ActionLeaveListOwn:    everyone,
	ActionLeaveListScoped: roles(entity.RoleManager, entity.RoleHeadOfDepartement),
	ActionLeaveReview:     roles(entity.RoleManager, entity.RoleHeadOfDepartement),
	ActionLeaveAttach:     everyone,
	ActionLeavePDF:        roles(entity.RoleManager, entity.RoleHeadOfDepartement, entity.RoleAdmin),
	ActionAuditView:       roles(entity.RoleManager, entity.RoleHeadOfDepartement, entity.RoleAdmin),
	ActionDirectoryRead:   roles(entity.RoleAdmin),
	ActionDirectoryWrite:  roles(entity.RoleAdmin),
	ActionNotifications:   everyone,
}

// Allowed reports whether role may perform action. Unknown actions and
// unknown roles are always denied.
func Allowed(role entity.Role, action Action) bool {
	set, ok := policy[action]
	if !ok {
		return false
	}
	return set[role]
}
