package forms

import (
	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/pkg/utils"
)

// DoorRatePayload is the coerced payload sent to the door rate endpoints.
type DoorRatePayload struct {
	Material      int64   `json:"material"`
	UnitRate      float64 `json:"unit_rate"`
	Currency      string  `json:"currency"`
	EffectiveFrom *string `json:"effective_from,omitempty"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
	IsActive      bool    `json:"is_active"`
	Notes         *string `json:"notes,omitempty"`
}

// DoorRateForm holds the draft state for creating or editing a door rate.
// Numeric and date fields stay strings until submit-time coercion.
type DoorRateForm struct {
	EditingID int64

	Material      int64
	UnitRate      string
	EffectiveFrom string
	EffectiveTo   string
	IsActive      bool
	Notes         string

	FieldErrors map[string]string
	SubmitError string
}

// NewDoorRateForm seeds a form from an existing rate, or with create-mode
// defaults when existing is nil. The currency is fixed to INR and not
// editable.
func NewDoorRateForm(existing *models.DoorRate) *DoorRateForm {
	f := &DoorRateForm{
		IsActive:    true,
		FieldErrors: map[string]string{},
	}
	if existing != nil {
		f.EditingID = existing.ID
		f.Material = existing.Material
		f.UnitRate = utils.FloatToStr(existing.UnitRate)
		f.IsActive = existing.IsActive
		if existing.EffectiveFrom != nil {
			f.EffectiveFrom = *existing.EffectiveFrom
		}
		if existing.EffectiveTo != nil {
			f.EffectiveTo = *existing.EffectiveTo
		}
		if existing.Notes != nil {
			f.Notes = *existing.Notes
		}
	}
	return f
}

// Validate runs the synchronous field checks.
func (f *DoorRateForm) Validate() map[string]string {
	errs := map[string]string{}

	if f.Material == 0 {
		errs["material"] = "Material is required"
	}

	rate, err := utils.StrToFloat(f.UnitRate)
	switch {
	case utils.IsEmpty(f.UnitRate):
		errs["unit_rate"] = "Unit rate is required"
	case err != nil:
		errs["unit_rate"] = "Unit rate must be a number"
	case rate <= 0:
		errs["unit_rate"] = "Unit rate must be greater than 0"
	case rate > models.MaxUnitRate:
		errs["unit_rate"] = "Unit rate must not exceed 999999"
	}

	if f.EffectiveFrom != "" && !validDate(f.EffectiveFrom) {
		errs["effective_from"] = "Effective from must be a valid date (YYYY-MM-DD)"
	}
	if f.EffectiveTo != "" && !validDate(f.EffectiveTo) {
		errs["effective_to"] = "Effective to must be a valid date (YYYY-MM-DD)"
	}
	if f.EffectiveFrom != "" && f.EffectiveTo != "" &&
		validDate(f.EffectiveFrom) && validDate(f.EffectiveTo) &&
		!dateAfter(f.EffectiveFrom, f.EffectiveTo) {
		errs["effective_to"] = "Effective to date must be after effective from date"
	}

	return errs
}

// Payload coerces the draft into the typed request payload. Only valid after
// Validate returns no errors.
func (f *DoorRateForm) Payload() DoorRatePayload {
	rate, _ := utils.StrToFloat(f.UnitRate)
	return DoorRatePayload{
		Material:      f.Material,
		UnitRate:      rate,
		Currency:      "INR",
		EffectiveFrom: utils.NewNullString(f.EffectiveFrom),
		EffectiveTo:   utils.NewNullString(f.EffectiveTo),
		IsActive:      f.IsActive,
		Notes:         utils.NewNullString(f.Notes),
	}
}

// Submit validates, then invokes save exactly once with the coerced payload.
func (f *DoorRateForm) Submit(save SaveFunc) bool {
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
	*f = *NewDoorRateForm(nil)
	return true
}
