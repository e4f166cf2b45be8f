package entity

// Role is the closed set of account roles. Keep switches over Role
// exhaustive so a new role becomes a compile-time concern.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
	RoleStoreOwner Role = "STORE_OWNER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleStoreOwner:
		return true
	}
	return false
}

// Roles lists every role, for zero-filled per-role breakdowns.
func Roles() []Role {
	return []Role{RoleAdmin, RoleUser, RoleStoreOwner}
}
