package forms

import (
	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/pkg/utils"
)

// StaffPayload is the coerced payload sent to the staff endpoints.
type StaffPayload struct {
	Username    string  `json:"username"`
	FullName    string  `json:"full_name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"is_active"`
}

// StaffForm holds the draft state for creating or editing a staff member.
type StaffForm struct {
	EditingID int64

	Username    string
	FullName    string
	Email       string
	PhoneNumber string
	Role        string
	IsActive    bool

	FieldErrors map[string]string
	SubmitError string
}

// NewStaffForm seeds a form from an existing staff member, or with
// create-mode defaults (sales role, active) when existing is nil.
func NewStaffForm(existing *models.StaffMember) *StaffForm {
	f := &StaffForm{
		Role:        models.StaffRoleSales,
		IsActive:    true,
		FieldErrors: map[string]string{},
	}
	if existing == nil {
		return f
	}
	f.EditingID = existing.ID
	f.Username = existing.Username
	f.FullName = existing.FullName
	f.Role = existing.Role
	f.IsActive = existing.IsActive
	if existing.Email != nil {
		f.Email = *existing.Email
	}
	if existing.PhoneNumber != nil {
		f.PhoneNumber = *existing.PhoneNumber
	}
	return f
}

// Validate runs the synchronous field checks.
func (f *StaffForm) Validate() map[string]string {
	errs := map[string]string{}

	if utils.IsEmpty(f.Username) {
		errs["username"] = "Username is required"
	}
	if utils.IsEmpty(f.FullName) {
		errs["full_name"] = "Full name is required"
	}
	if f.Email != "" && !validEmail(f.Email) {
		errs["email"] = "Email address is not valid"
	}
	if f.PhoneNumber != "" && !validPhone(f.PhoneNumber) {
		errs["phone_number"] = "Phone number must be a valid 10-digit mobile number"
	}
	if !models.IsValidStaffRole(f.Role) {
		errs["role"] = "Role must be one of ADMIN, MANAGER, DESIGNER, SALES"
	}

	return errs
}

// Payload coerces the draft into the typed request payload. Only valid after
// Validate returns no errors.
func (f *StaffForm) Payload() StaffPayload {
	return StaffPayload{
		Username:    f.Username,
		FullName:    f.FullName,
		Email:       utils.NewNullString(f.Email),
		PhoneNumber: utils.NewNullString(f.PhoneNumber),
		Role:        f.Role,
		IsActive:    f.IsActive,
	}
}

// Submit validates, then invokes save exactly once with the coerced payload.
func (f *StaffForm) Submit(save SaveFunc) bool {
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
	*f = *NewStaffForm(nil)
	return true
}
