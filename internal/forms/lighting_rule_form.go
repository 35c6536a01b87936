package forms

import (
	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/pkg/utils"
)

// LightingRulePayload is the coerced payload sent to the lighting rule
// endpoints.
type LightingRulePayload struct {
	Name            string `json:"name"`
	CabinetMaterial int64  `json:"cabinet_material"`
	CabinetType     int64  `json:"cabinet_type"`
	CalcMethod      string `json:"calc_method"`
	Customer        *int64 `json:"customer,omitempty"`
	IsGlobal        bool   `json:"is_global"`
	BudgetTier      string `json:"budget_tier"`

	AppliesToWorkTop   bool    `json:"applies_to_work_top"`
	AppliesToIsland    bool    `json:"applies_to_island"`
	AppliesToPeninsula bool    `json:"applies_to_peninsula"`
	AppliesToPantry    bool    `json:"applies_to_pantry"`
	WorkTopRate        float64 `json:"work_top_rate"`
	IslandRate         float64 `json:"island_rate"`
	PeninsulaRate      float64 `json:"peninsula_rate"`
	PantryRate         float64 `json:"pantry_rate"`
	WorkTopSpec        *string `json:"work_top_spec,omitempty"`
	IslandSpec         *string `json:"island_spec,omitempty"`
	PeninsulaSpec      *string `json:"peninsula_spec,omitempty"`
	PantrySpec         *string `json:"pantry_spec,omitempty"`

	EffectiveFrom *string `json:"effective_from,omitempty"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
	IsActive      bool    `json:"is_active"`
}

// LightingRuleForm holds the draft state for creating or editing a lighting
// rule. Per-category rates stay strings until submit-time coercion.
type LightingRuleForm struct {
	EditingID int64

	Name            string
	CabinetMaterial int64
	CabinetType     int64
	CalcMethod      string
	IsGlobal        bool
	Customer        int64
	BudgetTier      string

	AppliesToWorkTop   bool
	AppliesToIsland    bool
	AppliesToPeninsula bool
	AppliesToPantry    bool
	WorkTopRate        string
	IslandRate         string
	PeninsulaRate      string
	PantryRate         string
	WorkTopSpec        string
	IslandSpec         string
	PeninsulaSpec      string
	PantrySpec         string

	EffectiveFrom string
	EffectiveTo   string
	IsActive      bool

	FieldErrors map[string]string
	SubmitError string
}

// NewLightingRuleForm seeds a form from an existing rule, or with create-mode
// defaults (global economy rule, per-cabinet calculation) when existing is nil.
func NewLightingRuleForm(existing *models.LightingRule) *LightingRuleForm {
	f := &LightingRuleForm{
		CalcMethod:  models.CalcMethodPerCabinet,
		BudgetTier:  models.BudgetTierEconomy,
		IsGlobal:    true,
		IsActive:    true,
		FieldErrors: map[string]string{},
	}
	if existing == nil {
		return f
	}
	f.EditingID = existing.ID
	f.Name = existing.Name
	f.CabinetMaterial = existing.CabinetMaterial
	f.CabinetType = existing.CabinetType
	f.CalcMethod = existing.CalcMethod
	f.IsGlobal = existing.IsGlobal
	f.BudgetTier = existing.BudgetTier
	f.IsActive = existing.IsActive
	if existing.Customer != nil {
		f.Customer = *existing.Customer
	}
	f.AppliesToWorkTop = existing.AppliesToWorkTop
	f.AppliesToIsland = existing.AppliesToIsland
	f.AppliesToPeninsula = existing.AppliesToPeninsula
	f.AppliesToPantry = existing.AppliesToPantry
	f.WorkTopRate = utils.FloatToStr(existing.WorkTopRate)
	f.IslandRate = utils.FloatToStr(existing.IslandRate)
	f.PeninsulaRate = utils.FloatToStr(existing.PeninsulaRate)
	f.PantryRate = utils.FloatToStr(existing.PantryRate)
	if existing.WorkTopSpec != nil {
		f.WorkTopSpec = *existing.WorkTopSpec
	}
	if existing.IslandSpec != nil {
		f.IslandSpec = *existing.IslandSpec
	}
	if existing.PeninsulaSpec != nil {
		f.PeninsulaSpec = *existing.PeninsulaSpec
	}
	if existing.PantrySpec != nil {
		f.PantrySpec = *existing.PantrySpec
	}
	if existing.EffectiveFrom != nil {
		f.EffectiveFrom = *existing.EffectiveFrom
	}
	if existing.EffectiveTo != nil {
		f.EffectiveTo = *existing.EffectiveTo
	}
	return f
}

// Validate runs the synchronous field checks.
func (f *LightingRuleForm) Validate() map[string]string {
	errs := map[string]string{}

	if utils.IsEmpty(f.Name) {
		errs["name"] = "Name is required"
	}
	if f.CabinetMaterial == 0 {
		errs["cabinet_material"] = "Cabinet material is required"
	}
	if f.CabinetType == 0 {
		errs["cabinet_type"] = "Cabinet type is required"
	}
	if !models.IsValidCalcMethod(f.CalcMethod) {
		errs["calc_method"] = "Calculation method must be one of PER_CABINET, PER_METER, FLAT"
	}
	if !models.IsValidBudgetTier(f.BudgetTier) {
		errs["budget_tier"] = "Budget tier must be LUXURY or ECONOMY"
	}

	if !f.IsGlobal && f.Customer == 0 {
		errs["customer"] = "Customer is required for a customer-specific rule"
	}

	if !f.AppliesToWorkTop && !f.AppliesToIsland && !f.AppliesToPeninsula && !f.AppliesToPantry {
		errs["category_applications"] = "At least one category must be selected"
	}

	f.validateCategoryRate(errs, f.AppliesToWorkTop, f.WorkTopRate, "work_top_rate", "Work top rate")
	f.validateCategoryRate(errs, f.AppliesToIsland, f.IslandRate, "island_rate", "Island rate")
	f.validateCategoryRate(errs, f.AppliesToPeninsula, f.PeninsulaRate, "peninsula_rate", "Peninsula rate")
	f.validateCategoryRate(errs, f.AppliesToPantry, f.PantryRate, "pantry_rate", "Pantry rate")

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

func (f *LightingRuleForm) validateCategoryRate(errs map[string]string, applies bool, raw, key, label string) {
	if !applies {
		return
	}
	rate, err := utils.StrToFloat(raw)
	switch {
	case utils.IsEmpty(raw):
		errs[key] = label + " is required for an applied category"
	case err != nil:
		errs[key] = label + " must be a number"
	case rate <= 0:
		errs[key] = label + " must be greater than 0"
	}
}

// Payload coerces the draft into the typed request payload. Only valid after
// Validate returns no errors. Rates for unapplied categories are sent as 0.
func (f *LightingRuleForm) Payload() LightingRulePayload {
	p := LightingRulePayload{
		Name:            f.Name,
		CabinetMaterial: f.CabinetMaterial,
		CabinetType:     f.CabinetType,
		CalcMethod:      f.CalcMethod,
		IsGlobal:        f.IsGlobal,
		BudgetTier:      f.BudgetTier,

		AppliesToWorkTop:   f.AppliesToWorkTop,
		AppliesToIsland:    f.AppliesToIsland,
		AppliesToPeninsula: f.AppliesToPeninsula,
		AppliesToPantry:    f.AppliesToPantry,
		WorkTopSpec:        utils.NewNullString(f.WorkTopSpec),
		IslandSpec:         utils.NewNullString(f.IslandSpec),
		PeninsulaSpec:      utils.NewNullString(f.PeninsulaSpec),
		PantrySpec:         utils.NewNullString(f.PantrySpec),

		EffectiveFrom: utils.NewNullString(f.EffectiveFrom),
		EffectiveTo:   utils.NewNullString(f.EffectiveTo),
		IsActive:      f.IsActive,
	}
	if !f.IsGlobal && f.Customer != 0 {
		customer := f.Customer
		p.Customer = &customer
	}
	if f.AppliesToWorkTop {
		p.WorkTopRate, _ = utils.StrToFloat(f.WorkTopRate)
	}
	if f.AppliesToIsland {
		p.IslandRate, _ = utils.StrToFloat(f.IslandRate)
	}
	if f.AppliesToPeninsula {
		p.PeninsulaRate, _ = utils.StrToFloat(f.PeninsulaRate)
	}
	if f.AppliesToPantry {
		p.PantryRate, _ = utils.StrToFloat(f.PantryRate)
	}
	return p
}

// Submit validates, then invokes save exactly once with the coerced payload.
func (f *LightingRuleForm) Submit(save SaveFunc) bool {
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
	*f = *NewLightingRuleForm(nil)
	return true
}
