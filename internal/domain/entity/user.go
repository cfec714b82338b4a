package entity

import "time"

// User is a person known to the backend: a customer browsing the shop or a
// member of the back-office staff, distinguished by role.
type User struct {
	ID          string
	FullName    string
	Email       string
	PhoneNumber string
	Role        Role
	Status      AccountStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsStaff reports whether the user belongs to the back office rather than
// the customer base.
func (u *User) IsStaff() bool {
	return u.Role != RoleUser && u.Role != ""
}

// AccountStatus marks a user as active or inactive.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// Toggled returns the opposite account status.
func (s AccountStatus) Toggled() AccountStatus {
	if s == AccountActive {
		return AccountInactive
	}

	return AccountActive
}

// Role represents the type of role a user can have in the system.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleUser     Role = "User"
	RoleManager  Role = "Manager"
	RoleDesigner Role = "Designer"
	RoleStaff    Role = "Staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleManager, RoleDesigner, RoleStaff:
		return true
	default:
		return false
	}
}
