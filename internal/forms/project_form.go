package forms

import (
	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/pkg/utils"
)

// ProjectPayload is the coerced payload sent to the project endpoints.
// Totals are server-computed and never part of a mutation.
type ProjectPayload struct {
	Customer   int64                `json:"customer"`
	Brand      int64                `json:"brand"`
	BudgetTier string               `json:"budget_tier"`
	MarginPct  float64              `json:"margin_pct"`
	GSTPct     float64              `json:"gst_pct"`
	Currency   string               `json:"currency"`
	Scopes     models.ProjectScopes `json:"scopes"`
	Notes      *string              `json:"notes,omitempty"`
}

// ProjectForm holds the draft state for creating or editing a project.
type ProjectForm struct {
	EditingID int64

	Customer     int64
	Brand        int64
	BudgetTier   string
	MarginPct    string
	GSTPct       string
	ScopeOpen    bool
	ScopeWorking bool
	Notes        string

	FieldErrors map[string]string
	SubmitError string
}

// NewProjectForm seeds a form from an existing project, or with create-mode
// defaults (economy tier, open-kitchen scope, 18% GST) when existing is nil.
func NewProjectForm(existing *models.Project) *ProjectForm {
	f := &ProjectForm{
		BudgetTier:  models.BudgetTierEconomy,
		MarginPct:   "0",
		GSTPct:      "18",
		ScopeOpen:   true,
		FieldErrors: map[string]string{},
	}
	if existing == nil {
		return f
	}
	f.EditingID = existing.ID
	f.Customer = existing.Customer
	f.Brand = existing.Brand
	f.BudgetTier = existing.BudgetTier
	f.MarginPct = utils.FloatToStr(existing.MarginPct)
	f.GSTPct = utils.FloatToStr(existing.GSTPct)
	f.ScopeOpen = existing.Scopes.Open
	f.ScopeWorking = existing.Scopes.Working
	if existing.Notes != nil {
		f.Notes = *existing.Notes
	}
	return f
}

// Validate runs the synchronous field checks.
func (f *ProjectForm) Validate() map[string]string {
	errs := map[string]string{}

	if f.Customer == 0 {
		errs["customer"] = "Customer is required"
	}
	if f.Brand == 0 {
		errs["brand"] = "Brand is required"
	}
	if !models.IsValidBudgetTier(f.BudgetTier) {
		errs["budget_tier"] = "Budget tier must be LUXURY or ECONOMY"
	}

	margin, err := utils.StrToFloat(f.MarginPct)
	switch {
	case utils.IsEmpty(f.MarginPct):
		errs["margin_pct"] = "Margin is required"
	case err != nil:
		errs["margin_pct"] = "Margin must be a number"
	case margin < 0 || margin > 100:
		errs["margin_pct"] = "Margin must be between 0 and 100"
	}

	gst, err := utils.StrToFloat(f.GSTPct)
	switch {
	case utils.IsEmpty(f.GSTPct):
		errs["gst_pct"] = "GST is required"
	case err != nil:
		errs["gst_pct"] = "GST must be a number"
	case gst < 0 || gst > 50:
		errs["gst_pct"] = "GST must be between 0 and 50"
	}

	if !f.ScopeOpen && !f.ScopeWorking {
		errs["scopes"] = "At least one scope (Open or Working) must be selected"
	}

	return errs
}

// Payload coerces the draft into the typed request payload. Only valid after
// Validate returns no errors. The currency is fixed to INR.
func (f *ProjectForm) Payload() ProjectPayload {
	margin, _ := utils.StrToFloat(f.MarginPct)
	gst, _ := utils.StrToFloat(f.GSTPct)
	return ProjectPayload{
		Customer:   f.Customer,
		Brand:      f.Brand,
		BudgetTier: f.BudgetTier,
		MarginPct:  margin,
		GSTPct:     gst,
		Currency:   "INR",
		Scopes:     models.ProjectScopes{Open: f.ScopeOpen, Working: f.ScopeWorking},
		Notes:      utils.NewNullString(f.Notes),
	}
}

// Submit validates, then invokes save exactly once with the coerced payload.
func (f *ProjectForm) Submit(save SaveFunc) bool {
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
	*f = *NewProjectForm(nil)
	return true
}
