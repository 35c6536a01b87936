package models

import "time"

// Material roles describe where a material may be used in a kitchen build.
const (
	MaterialRoleCabinet = "CABINET"
	MaterialRoleDoor    = "DOOR"
	MaterialRoleTop     = "TOP"
	MaterialRoleBoth    = "BOTH"
)

// MaterialRoles lists the valid role values, in display order.
var MaterialRoles = []string{MaterialRoleCabinet, MaterialRoleDoor, MaterialRoleTop, MaterialRoleBoth}

// Material represents a fabrication material master record.
type Material struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Notes     *string   `json:"notes,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsValidMaterialRole reports whether role is one of the known enum values.
func IsValidMaterialRole(role string) bool {
	for _, r := range MaterialRoles {
		if r == role {
			return true
		}
	}
	return false
}
