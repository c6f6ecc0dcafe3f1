package authorization

// UserRole is a platform account role. Only staff roles may use the console.
type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role may sign in to the console.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleModerator
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleModerator || r == RoleUser
}

// ParseUserRole maps unknown roles to RoleUser, which never grants console access.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
