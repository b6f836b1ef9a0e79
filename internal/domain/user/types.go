package user

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTeamMember Role = "team_member"
	RoleManager    Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleTeamMember, RoleManager:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may resolve fitting-room requests.
func (r Role) IsStaff() bool {
	return r == RoleTeamMember || r == RoleManager
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
