package authorization

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleTechnician UserRole = "tecnico"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleTechnician
}

// ParseUserRole maps a stored role text to a known role. Unknown values
// get the technician role, never admin.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleTechnician
}
