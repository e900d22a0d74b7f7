package entity

// Role is the closed set of directory roles. Authorization decisions go
// through the authz policy table, never through ad-hoc string comparisons.
type Role string

const (
	RoleEmployee          Role = "employee"
	RoleManager           Role = "manager"
	RoleHeadOfDepartement Role = "head_of_departement"
	RoleAdmin             Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHeadOfDepartement, RoleAdmin:
		return true
	}
	return false
}
