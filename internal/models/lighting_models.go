package models

import "time"

// Lighting calculation methods.
const (
	CalcMethodPerCabinet = "PER_CABINET"
	CalcMethodPerMeter   = "PER_METER"
	CalcMethodFlat       = "FLAT"
)

// CalcMethods lists the valid calculation method values.
var CalcMethods = []string{CalcMethodPerCabinet, CalcMethodPerMeter, CalcMethodFlat}

// Budget tiers select which pricing rules apply to a customer or project.
const (
	BudgetTierLuxury  = "LUXURY"
	BudgetTierEconomy = "ECONOMY"
)

// BudgetTiers lists the valid budget tier values.
var BudgetTiers = []string{BudgetTierLuxury, BudgetTierEconomy}

// LightingRule represents a lighting pricing rule. A rule with a nil Customer
// is global; a customer-specific rule overrides globals for that customer.
// At least one of the category application flags must be set.
type LightingRule struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	CabinetMaterial int64   `json:"cabinet_material"`
	CabinetType     int64   `json:"cabinet_type"`
	CalcMethod      string  `json:"calc_method"`
	Customer        *int64  `json:"customer,omitempty"`
	IsGlobal        bool    `json:"is_global"`
	BudgetTier      string  `json:"budget_tier"`

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

	EffectiveFrom *string   `json:"effective_from,omitempty"`
	EffectiveTo   *string   `json:"effective_to,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AppliesToAny reports whether the rule applies to at least one category.
func (r LightingRule) AppliesToAny() bool {
	return r.AppliesToWorkTop || r.AppliesToIsland || r.AppliesToPeninsula || r.AppliesToPantry
}

// IsValidCalcMethod reports whether method is one of the known enum values.
func IsValidCalcMethod(method string) bool {
	for _, m := range CalcMethods {
		if m == method {
			return true
		}
	}
	return false
}

// IsValidBudgetTier reports whether tier is one of the known enum values.
func IsValidBudgetTier(tier string) bool {
	for _, t := range BudgetTiers {
		if t == tier {
			return true
		}
	}
	return false
}
