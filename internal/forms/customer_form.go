package forms

import (
	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/pkg/utils"
)

// CustomerPayload is the coerced payload sent to the customer endpoints.
type CustomerPayload struct {
	Name          string                    `json:"name"`
	Location      *string                   `json:"location,omitempty"`
	ContactNumber string                    `json:"contact_number"`
	State         string                    `json:"state"`
	KitchenTypes  []models.KitchenTypeCount `json:"kitchen_types,omitempty"`
	Notes         *string                   `json:"notes,omitempty"`
}

// CustomerForm holds the draft state for customer intake and editing.
type CustomerForm struct {
	EditingID int64

	Name          string
	Location      string
	ContactNumber string
	State         string
	KitchenTypes  []models.KitchenTypeCount
	Notes         string

	FieldErrors map[string]string
	SubmitError string
}

// NewCustomerForm seeds a form from an existing customer, or with intake
// defaults (Lead stage) when existing is nil.
func NewCustomerForm(existing *models.Customer) *CustomerForm {
	f := &CustomerForm{
		State:       models.WorkflowStateLead,
		FieldErrors: map[string]string{},
	}
	if existing == nil {
		return f
	}
	f.EditingID = existing.ID
	f.Name = existing.Name
	f.ContactNumber = existing.ContactNumber
	f.State = existing.State
	f.KitchenTypes = append([]models.KitchenTypeCount(nil), existing.KitchenTypes...)
	if existing.Location != nil {
		f.Location = *existing.Location
	}
	if existing.Notes != nil {
		f.Notes = *existing.Notes
	}
	return f
}

// Validate runs the synchronous field checks.
func (f *CustomerForm) Validate() map[string]string {
	errs := map[string]string{}

	if utils.IsEmpty(f.Name) {
		errs["name"] = "Name is required"
	}
	if utils.IsEmpty(f.ContactNumber) {
		errs["contact_number"] = "Contact number is required"
	} else if !validPhone(f.ContactNumber) {
		errs["contact_number"] = "Contact number must be a valid 10-digit mobile number"
	}
	if !models.IsValidWorkflowState(f.State) {
		errs["state"] = "Workflow state is not a known stage"
	}
	for _, kt := range f.KitchenTypes {
		if utils.IsEmpty(kt.Type) || kt.Count < 1 {
			errs["kitchen_types"] = "Each kitchen type needs a name and a count of at least 1"
			break
		}
	}

	return errs
}

// Payload coerces the draft into the typed request payload. Only valid after
// Validate returns no errors.
func (f *CustomerForm) Payload() CustomerPayload {
	return CustomerPayload{
		Name:          f.Name,
		Location:      utils.NewNullString(f.Location),
		ContactNumber: f.ContactNumber,
		State:         f.State,
		KitchenTypes:  f.KitchenTypes,
		Notes:         utils.NewNullString(f.Notes),
	}
}

// Submit validates, then invokes save exactly once with the coerced payload.
func (f *CustomerForm) Submit(save SaveFunc) bool {
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
	*f = *NewCustomerForm(nil)
	return true
}
