package forms

import (
	"reflect"
	"testing"

	"kitchenfab_admin/internal/models"
)

func validMaterialForm() *MaterialForm {
	f := NewMaterialForm(nil)
	f.Name = "SS 304"
	return f
}

func validDoorRateForm() *DoorRateForm {
	f := NewDoorRateForm(nil)
	f.Material = 7
	f.UnitRate = "450.50"
	return f
}

func validLightingRuleForm() *LightingRuleForm {
	f := NewLightingRuleForm(nil)
	f.Name = "Under-cabinet strip"
	f.CabinetMaterial = 3
	f.CabinetType = 2
	f.AppliesToWorkTop = true
	f.WorkTopRate = "120"
	return f
}

func validProjectForm() *ProjectForm {
	f := NewProjectForm(nil)
	f.Customer = 11
	f.Brand = 4
	return f
}

func validCustomerForm() *CustomerForm {
	f := NewCustomerForm(nil)
	f.Name = "Asha Nair"
	f.ContactNumber = "9876543210"
	return f
}

func validStaffForm() *StaffForm {
	f := NewStaffForm(nil)
	f.Username = "asha"
	f.FullName = "Asha Nair"
	return f
}

func TestMaterialForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MaterialForm)
		wantKey string
		wantMsg string
	}{
		{
			name:    "missing name",
			mutate:  func(f *MaterialForm) { f.Name = "" },
			wantKey: "name",
			wantMsg: "Name is required",
		},
		{
			name:    "whitespace-only name",
			mutate:  func(f *MaterialForm) { f.Name = "   " },
			wantKey: "name",
			wantMsg: "Name is required",
		},
		{
			name:    "unknown role",
			mutate:  func(f *MaterialForm) { f.Role = "SHELF" },
			wantKey: "role",
			wantMsg: "Role must be one of CABINET, DOOR, TOP, BOTH",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validMaterialForm()
			tt.mutate(f)
			errs := f.Validate()
			if errs[tt.wantKey] != tt.wantMsg {
				t.Errorf("errs[%q] = %q, want %q", tt.wantKey, errs[tt.wantKey], tt.wantMsg)
			}
		})
	}

	if errs := validMaterialForm().Validate(); len(errs) != 0 {
		t.Errorf("valid form reported errors: %v", errs)
	}
}

func TestMaterialForm_CreateDefaults(t *testing.T) {
	f := NewMaterialForm(nil)
	if f.Role != models.MaterialRoleCabinet {
		t.Errorf("default role = %q", f.Role)
	}
	if !f.IsActive {
		t.Error("new materials default to active")
	}
	if f.EditingID != 0 {
		t.Error("create mode must have EditingID 0")
	}
}

func TestMaterialForm_SubmitBlocksOnValidation(t *testing.T) {
	f := NewMaterialForm(nil) // name missing
	called := false
	okSubmit := f.Submit(func(interface{}) (bool, string) {
		called = true
		return true, ""
	})
	if okSubmit {
		t.Error("submit must fail on a validation error")
	}
	if called {
		t.Error("save must never run when validation fails")
	}
	if f.FieldErrors["name"] != "Name is required" {
		t.Errorf("FieldErrors = %v", f.FieldErrors)
	}
}

func TestMaterialForm_SubmitResetsOnSuccess(t *testing.T) {
	f := validMaterialForm()
	f.Notes = "brushed finish"
	var got MaterialPayload
	okSubmit := f.Submit(func(payload interface{}) (bool, string) {
		got = payload.(MaterialPayload)
		return true, ""
	})
	if !okSubmit {
		t.Fatalf("submit failed: %v / %s", f.FieldErrors, f.SubmitError)
	}
	if got.Name != "SS 304" || got.Notes == nil || *got.Notes != "brushed finish" {
		t.Errorf("payload = %+v", got)
	}
	if f.Name != "" || len(f.FieldErrors) != 0 {
		t.Error("form must reset to create defaults after a successful save")
	}
}

func TestMaterialForm_SubmitKeepsDraftOnSaveFailure(t *testing.T) {
	f := validMaterialForm()
	okSubmit := f.Submit(func(interface{}) (bool, string) {
		return false, "name: material with this name already exists"
	})
	if okSubmit {
		t.Error("submit must report failure when save fails")
	}
	if f.SubmitError != "name: material with this name already exists" {
		t.Errorf("SubmitError = %q", f.SubmitError)
	}
	if f.Name != "SS 304" {
		t.Error("draft must survive a failed save so the dialog stays open")
	}
}

func TestDoorRateForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DoorRateForm)
		wantKey string
		wantMsg string
	}{
		{
			name:    "missing material",
			mutate:  func(f *DoorRateForm) { f.Material = 0 },
			wantKey: "material",
			wantMsg: "Material is required",
		},
		{
			name:    "missing rate",
			mutate:  func(f *DoorRateForm) { f.UnitRate = "" },
			wantKey: "unit_rate",
			wantMsg: "Unit rate is required",
		},
		{
			name:    "non-numeric rate",
			mutate:  func(f *DoorRateForm) { f.UnitRate = "abc" },
			wantKey: "unit_rate",
			wantMsg: "Unit rate must be a number",
		},
		{
			name:    "zero rate",
			mutate:  func(f *DoorRateForm) { f.UnitRate = "0" },
			wantKey: "unit_rate",
			wantMsg: "Unit rate must be greater than 0",
		},
		{
			name:    "rate above cap",
			mutate:  func(f *DoorRateForm) { f.UnitRate = "1000000" },
			wantKey: "unit_rate",
			wantMsg: "Unit rate must not exceed 999999",
		},
		{
			name:    "malformed effective from",
			mutate:  func(f *DoorRateForm) { f.EffectiveFrom = "01/02/2026" },
			wantKey: "effective_from",
			wantMsg: "Effective from must be a valid date (YYYY-MM-DD)",
		},
		{
			name: "effective to before effective from",
			mutate: func(f *DoorRateForm) {
				f.EffectiveFrom = "2026-06-01"
				f.EffectiveTo = "2026-05-01"
			},
			wantKey: "effective_to",
			wantMsg: "Effective to date must be after effective from date",
		},
		{
			name: "effective to equal to effective from",
			mutate: func(f *DoorRateForm) {
				f.EffectiveFrom = "2026-06-01"
				f.EffectiveTo = "2026-06-01"
			},
			wantKey: "effective_to",
			wantMsg: "Effective to date must be after effective from date",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validDoorRateForm()
			tt.mutate(f)
			errs := f.Validate()
			if errs[tt.wantKey] != tt.wantMsg {
				t.Errorf("errs[%q] = %q, want %q", tt.wantKey, errs[tt.wantKey], tt.wantMsg)
			}
		})
	}
}

func TestDoorRateForm_DatesOptionalTogetherOrAlone(t *testing.T) {
	f := validDoorRateForm()
	if errs := f.Validate(); len(errs) != 0 {
		t.Errorf("no dates should be fine: %v", errs)
	}
	f.EffectiveFrom = "2026-06-01"
	if errs := f.Validate(); len(errs) != 0 {
		t.Errorf("from-only should be fine: %v", errs)
	}
	f.EffectiveFrom = ""
	f.EffectiveTo = "2026-06-01"
	if errs := f.Validate(); len(errs) != 0 {
		t.Errorf("to-only should be fine: %v", errs)
	}
}

func TestDoorRateForm_PayloadFixesCurrency(t *testing.T) {
	f := validDoorRateForm()
	p := f.Payload()
	if p.Currency != "INR" {
		t.Errorf("currency = %q, want INR", p.Currency)
	}
	if p.UnitRate != 450.50 {
		t.Errorf("unit_rate = %v", p.UnitRate)
	}
	if p.EffectiveFrom != nil || p.Notes != nil {
		t.Error("empty optional fields must coerce to nil, not empty strings")
	}
}

func TestLightingRuleForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LightingRuleForm)
		wantKey string
		wantMsg string
	}{
		{
			name: "no category selected",
			mutate: func(f *LightingRuleForm) {
				f.AppliesToWorkTop = false
				f.WorkTopRate = ""
			},
			wantKey: "category_applications",
			wantMsg: "At least one category must be selected",
		},
		{
			name: "customer-specific rule without customer",
			mutate: func(f *LightingRuleForm) {
				f.IsGlobal = false
				f.Customer = 0
			},
			wantKey: "customer",
			wantMsg: "Customer is required for a customer-specific rule",
		},
		{
			name:    "applied category missing rate",
			mutate:  func(f *LightingRuleForm) { f.WorkTopRate = "" },
			wantKey: "work_top_rate",
			wantMsg: "Work top rate is required for an applied category",
		},
		{
			name: "applied category zero rate",
			mutate: func(f *LightingRuleForm) {
				f.AppliesToIsland = true
				f.IslandRate = "0"
			},
			wantKey: "island_rate",
			wantMsg: "Island rate must be greater than 0",
		},
		{
			name:    "missing cabinet material",
			mutate:  func(f *LightingRuleForm) { f.CabinetMaterial = 0 },
			wantKey: "cabinet_material",
			wantMsg: "Cabinet material is required",
		},
		{
			name:    "bad calc method",
			mutate:  func(f *LightingRuleForm) { f.CalcMethod = "PER_DRAWER" },
			wantKey: "calc_method",
			wantMsg: "Calculation method must be one of PER_CABINET, PER_METER, FLAT",
		},
		{
			name: "effective window inverted",
			mutate: func(f *LightingRuleForm) {
				f.EffectiveFrom = "2026-03-01"
				f.EffectiveTo = "2026-02-01"
			},
			wantKey: "effective_to",
			wantMsg: "Effective to date must be after effective from date",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validLightingRuleForm()
			tt.mutate(f)
			errs := f.Validate()
			if errs[tt.wantKey] != tt.wantMsg {
				t.Errorf("errs[%q] = %q, want %q", tt.wantKey, errs[tt.wantKey], tt.wantMsg)
			}
		})
	}
}

func TestLightingRuleForm_UnappliedRatesNotValidated(t *testing.T) {
	f := validLightingRuleForm()
	f.IslandRate = "garbage" // island is not applied
	if errs := f.Validate(); len(errs) != 0 {
		t.Errorf("rates for unapplied categories must not be validated: %v", errs)
	}
}

func TestLightingRuleForm_PayloadCustomerAndRates(t *testing.T) {
	f := validLightingRuleForm()
	f.IslandRate = "55" // not applied, must still coerce to 0
	p := f.Payload()
	if p.Customer != nil {
		t.Error("global rules must not carry a customer")
	}
	if p.WorkTopRate != 120 || p.IslandRate != 0 {
		t.Errorf("rates = %v / %v", p.WorkTopRate, p.IslandRate)
	}

	f.IsGlobal = false
	f.Customer = 42
	p = f.Payload()
	if p.Customer == nil || *p.Customer != 42 {
		t.Errorf("customer = %v, want 42", p.Customer)
	}
}

func TestLightingRuleForm_CreateDefaults(t *testing.T) {
	f := NewLightingRuleForm(nil)
	if f.CalcMethod != models.CalcMethodPerCabinet {
		t.Errorf("calc method = %q", f.CalcMethod)
	}
	if f.BudgetTier != models.BudgetTierEconomy {
		t.Errorf("budget tier = %q", f.BudgetTier)
	}
	if !f.IsGlobal || !f.IsActive {
		t.Error("new rules default to global and active")
	}
}

func TestProjectForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProjectForm)
		wantKey string
		wantMsg string
	}{
		{
			name: "no scope selected",
			mutate: func(f *ProjectForm) {
				f.ScopeOpen = false
				f.ScopeWorking = false
			},
			wantKey: "scopes",
			wantMsg: "At least one scope (Open or Working) must be selected",
		},
		{
			name:    "missing customer",
			mutate:  func(f *ProjectForm) { f.Customer = 0 },
			wantKey: "customer",
			wantMsg: "Customer is required",
		},
		{
			name:    "margin above 100",
			mutate:  func(f *ProjectForm) { f.MarginPct = "101" },
			wantKey: "margin_pct",
			wantMsg: "Margin must be between 0 and 100",
		},
		{
			name:    "negative margin",
			mutate:  func(f *ProjectForm) { f.MarginPct = "-1" },
			wantKey: "margin_pct",
			wantMsg: "Margin must be between 0 and 100",
		},
		{
			name:    "gst above 50",
			mutate:  func(f *ProjectForm) { f.GSTPct = "51" },
			wantKey: "gst_pct",
			wantMsg: "GST must be between 0 and 50",
		},
		{
			name:    "non-numeric gst",
			mutate:  func(f *ProjectForm) { f.GSTPct = "eighteen" },
			wantKey: "gst_pct",
			wantMsg: "GST must be a number",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validProjectForm()
			tt.mutate(f)
			errs := f.Validate()
			if errs[tt.wantKey] != tt.wantMsg {
				t.Errorf("errs[%q] = %q, want %q", tt.wantKey, errs[tt.wantKey], tt.wantMsg)
			}
		})
	}
}

func TestProjectForm_CreateDefaults(t *testing.T) {
	f := NewProjectForm(nil)
	if f.BudgetTier != models.BudgetTierEconomy || f.MarginPct != "0" || f.GSTPct != "18" {
		t.Errorf("defaults = %q / %q / %q", f.BudgetTier, f.MarginPct, f.GSTPct)
	}
	if !f.ScopeOpen || f.ScopeWorking {
		t.Error("new projects default to open-kitchen scope only")
	}
}

func TestProjectForm_PayloadScopes(t *testing.T) {
	f := validProjectForm()
	f.ScopeWorking = true
	p := f.Payload()
	want := models.ProjectScopes{Open: true, Working: true}
	if !reflect.DeepEqual(p.Scopes, want) {
		t.Errorf("scopes = %+v", p.Scopes)
	}
	if p.Currency != "INR" {
		t.Errorf("currency = %q", p.Currency)
	}
}

func TestCustomerForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CustomerForm)
		wantKey string
		wantMsg string
	}{
		{
			name:    "missing contact",
			mutate:  func(f *CustomerForm) { f.ContactNumber = "" },
			wantKey: "contact_number",
			wantMsg: "Contact number is required",
		},
		{
			name:    "short contact",
			mutate:  func(f *CustomerForm) { f.ContactNumber = "98765" },
			wantKey: "contact_number",
			wantMsg: "Contact number must be a valid 10-digit mobile number",
		},
		{
			name:    "contact starting with 5",
			mutate:  func(f *CustomerForm) { f.ContactNumber = "5876543210" },
			wantKey: "contact_number",
			wantMsg: "Contact number must be a valid 10-digit mobile number",
		},
		{
			name:    "unknown workflow state",
			mutate:  func(f *CustomerForm) { f.State = "PAUSED" },
			wantKey: "state",
			wantMsg: "Workflow state is not a known stage",
		},
		{
			name: "kitchen type without count",
			mutate: func(f *CustomerForm) {
				f.KitchenTypes = []models.KitchenTypeCount{{Type: "Island", Count: 0}}
			},
			wantKey: "kitchen_types",
			wantMsg: "Each kitchen type needs a name and a count of at least 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validCustomerForm()
			tt.mutate(f)
			errs := f.Validate()
			if errs[tt.wantKey] != tt.wantMsg {
				t.Errorf("errs[%q] = %q, want %q", tt.wantKey, errs[tt.wantKey], tt.wantMsg)
			}
		})
	}
}

func TestCustomerForm_IntakeDefaultsToLead(t *testing.T) {
	f := NewCustomerForm(nil)
	if f.State != models.WorkflowStateLead {
		t.Errorf("state = %q, want lead stage", f.State)
	}
}

func TestStaffForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StaffForm)
		wantKey string
		wantMsg string
	}{
		{
			name:    "missing username",
			mutate:  func(f *StaffForm) { f.Username = "" },
			wantKey: "username",
			wantMsg: "Username is required",
		},
		{
			name:    "bad email",
			mutate:  func(f *StaffForm) { f.Email = "not-an-email" },
			wantKey: "email",
			wantMsg: "Email address is not valid",
		},
		{
			name:    "bad phone",
			mutate:  func(f *StaffForm) { f.PhoneNumber = "12345" },
			wantKey: "phone_number",
			wantMsg: "Phone number must be a valid 10-digit mobile number",
		},
		{
			name:    "unknown role",
			mutate:  func(f *StaffForm) { f.Role = "INTERN" },
			wantKey: "role",
			wantMsg: "Role must be one of ADMIN, MANAGER, DESIGNER, SALES",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validStaffForm()
			tt.mutate(f)
			errs := f.Validate()
			if errs[tt.wantKey] != tt.wantMsg {
				t.Errorf("errs[%q] = %q, want %q", tt.wantKey, errs[tt.wantKey], tt.wantMsg)
			}
		})
	}

	// Email and phone are optional; empty values pass.
	if errs := validStaffForm().Validate(); len(errs) != 0 {
		t.Errorf("valid form reported errors: %v", errs)
	}
}

func TestStaffForm_SeedsFromExisting(t *testing.T) {
	email := "asha@example.com"
	existing := &models.StaffMember{
		ID:       9,
		Username: "asha",
		FullName: "Asha Nair",
		Email:    &email,
		Role:     models.StaffRoleDesigner,
		IsActive: false,
	}
	f := NewStaffForm(existing)
	if f.EditingID != 9 || f.Email != email || f.Role != models.StaffRoleDesigner || f.IsActive {
		t.Errorf("seeded form = %+v", f)
	}
}
