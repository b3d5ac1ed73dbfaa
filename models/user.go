package models

import "strings"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleDirector Role = "director"
	RoleManager  Role = "manager"
	RoleStaff    Role = "staff"
)

// ParseRole normalizes a role string to the closed set. Unknown or empty
// values fall back to staff, the least privileged role.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleHR:
		return RoleHR
	case RoleDirector:
		return RoleDirector
	case RoleManager:
		return RoleManager
	default:
		return RoleStaff
	}
}

// KnownRole reports whether s names a role exactly, used where an invalid
// role must be rejected instead of defaulted.
func KnownRole(s string) bool {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin, RoleHR, RoleDirector, RoleManager, RoleStaff:
		return true
	}
	return false
}

// ManagerOrAbove reports whether the role carries team-level privileges.
func (r Role) ManagerOrAbove() bool {
	switch r {
	case RoleManager, RoleDirector, RoleHR, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        string `bson:"_id" json:"user_id"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	Role      Role   `bson:"role" json:"role"`
	ManagerID string `bson:"manager_id,omitempty" json:"manager_id,omitempty"`
	AccountID string `bson:"account_id,omitempty" json:"-"`
	CreatedAt string `bson:"created_at" json:"created_at"`
	UpdatedAt string `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Account is the identity-provider credential record, kept separate from the
// User profile the way an external auth service would keep it.
type Account struct {
	ID           string `bson:"_id" json:"account_id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	DisplayName  string `bson:"display_name" json:"display_name"`
	CreatedAt    string `bson:"created_at" json:"created_at"`
	Disabled     bool   `bson:"disabled" json:"disabled"`
}
