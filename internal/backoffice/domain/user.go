package domain

import "time"

// Role is the fixed authorisation role assigned to every account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleClient   Role = "client"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// HasDepartment reports whether a department is meaningful for this role.
// Only station staff (employees and managers) belong to a department.
func (r Role) HasDepartment() bool {
	return r == RoleEmployee || r == RoleManager
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // argon2id encoded
	Role         Role
	Department   string     // empty unless Role.HasDepartment()
	TOTPSecret   *string    // base32 TOTP secret (nullable)
	TOTPEnabled  *time.Time // when the second factor was activated (nullable)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
