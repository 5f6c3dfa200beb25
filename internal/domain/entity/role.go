package entity

// Role is the single role held by a user account.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleCitizen || r == RoleAdmin
}
