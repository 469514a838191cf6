package user

import "time"

// Role is the closed set of roles in the system. Authorization decisions go
// through the permission table in permission.go, never through ad-hoc string
// comparisons in handlers.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User represents an authenticated account. The leave engine only reads
// users: the caller identity comes from JWT claims, and the reviewer set
// (HR/Admin) is resolved here when fanning out notifications.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name used in notification messages.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
