package user

import "time"

type Role string

const (
	RoleAdministrator Role = "administrator" // Full access, including user management and employee removal
	RoleOperator      Role = "operator"      // Can record attendance and manage sites/employees
	RoleViewer        Role = "viewer"        // Read-only access to rosters and reports
)

// AllRoles lists every role a user may carry.
var AllRoles = []Role{RoleAdministrator, RoleOperator, RoleViewer}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole checks if a role belongs to the fixed role set.
func IsValidRole(role Role) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleAllowed reports whether role is a member of allowed. An empty allowed
// set means the operation is open to any authenticated user.
func RoleAllowed(role Role, allowed []Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}

// IsAdministrator checks if user has full access
func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

// CanRecordAttendance checks if user can submit attendance batches
func (u *User) CanRecordAttendance() bool {
	return u.Role == RoleAdministrator || u.Role == RoleOperator
}
