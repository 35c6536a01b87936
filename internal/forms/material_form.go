package forms

import (
	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/pkg/utils"
)

// MaterialPayload is the coerced payload sent to the materials endpoints.
type MaterialPayload struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Notes    *string `json:"notes,omitempty"`
	IsActive bool    `json:"is_active"`
}

// MaterialForm holds the draft state for creating or editing a material.
type MaterialForm struct {
	EditingID int64 // 0 in create mode

	Name     string
	Role     string
	Notes    string
	IsActive bool

	FieldErrors map[string]string
	SubmitError string
}

// NewMaterialForm seeds a form from an existing material, or with create-mode
// defaults when existing is nil.
func NewMaterialForm(existing *models.Material) *MaterialForm {
	f := &MaterialForm{
		Role:        models.MaterialRoleCabinet,
		IsActive:    true,
		FieldErrors: map[string]string{},
	}
	if existing != nil {
		f.EditingID = existing.ID
		f.Name = existing.Name
		f.Role = existing.Role
		f.IsActive = existing.IsActive
		if existing.Notes != nil {
			f.Notes = *existing.Notes
		}
	}
	return f
}

// Validate runs the synchronous field checks. It is pure: it returns the
// violations without touching form state.
func (f *MaterialForm) Validate() map[string]string {
	errs := map[string]string{}
	if utils.IsEmpty(f.Name) {
		errs["name"] = "Name is required"
	}
	if !models.IsValidMaterialRole(f.Role) {
		errs["role"] = "Role must be one of CABINET, DOOR, TOP, BOTH"
	}
	return errs
}

// Payload coerces the draft into the typed request payload. Only valid after
// Validate returns no errors.
func (f *MaterialForm) Payload() MaterialPayload {
	return MaterialPayload{
		Name:     f.Name,
		Role:     f.Role,
		Notes:    utils.NewNullString(f.Notes),
		IsActive: f.IsActive,
	}
}

// Submit validates, then invokes save exactly once with the coerced payload.
// It returns true when the save succeeded and the form reset; on validation
// or save failure the draft is kept so the dialog stays open with its errors.
func (f *MaterialForm) Submit(save SaveFunc) bool {
	f.SubmitError = ""
	f.FieldErrors = f.Validate()
	if len(f.FieldErrors) > 0 {
		return false
	}
	okSave, errMsg := save(f.Payload())
	if !okSave {
		f.SubmitError = errMsg
		return false
	}
	*f = *NewMaterialForm(nil)
	return true
}
