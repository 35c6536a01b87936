package models

import "time"

// Staff roles drive backend authorization; the client only mirrors them for
// display and dropdowns.
const (
	StaffRoleAdmin    = "ADMIN"
	StaffRoleManager  = "MANAGER"
	StaffRoleDesigner = "DESIGNER"
	StaffRoleSales    = "SALES"
)

// StaffRoles lists the valid staff role values.
var StaffRoles = []string{StaffRoleAdmin, StaffRoleManager, StaffRoleDesigner, StaffRoleSales}

// StaffMember represents an employee account with backend login access.
type StaffMember struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsValidStaffRole reports whether role is one of the known enum values.
func IsValidStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}
