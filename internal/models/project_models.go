package models

import "time"

// Project statuses follow the quotation lifecycle.
const (
	ProjectStatusDraft        = "DRAFT"
	ProjectStatusQuoted       = "QUOTED"
	ProjectStatusConfirmed    = "CONFIRMED"
	ProjectStatusInProduction = "IN_PRODUCTION"
	ProjectStatusDelivered    = "DELIVERED"
	ProjectStatusCancelled    = "CANCELLED"
)

// ProjectStatuses lists the valid status values, in lifecycle order.
var ProjectStatuses = []string{
	ProjectStatusDraft,
	ProjectStatusQuoted,
	ProjectStatusConfirmed,
	ProjectStatusInProduction,
	ProjectStatusDelivered,
	ProjectStatusCancelled,
}

// ProjectScopes selects the quotation modes for a project. At least one of
// the two must be enabled.
type ProjectScopes struct {
	Open    bool `json:"open"`    // customer-facing "Open Kitchen" quotation
	Working bool `json:"working"` // technical "Working Kitchen" quotation
}

// Any reports whether at least one scope is enabled.
func (s ProjectScopes) Any() bool {
	return s.Open || s.Working
}

// ProjectTotals carries server-computed quotation totals. Read-only on the
// client; mutations never send it back.
type ProjectTotals struct {
	Subtotal   float64 `json:"subtotal"`
	MarginAmt  float64 `json:"margin_amount"`
	GSTAmt     float64 `json:"gst_amount"`
	GrandTotal float64 `json:"grand_total"`
}

// Project represents a quotation project for one customer and brand.
type Project struct {
	ID         int64          `json:"id"`
	Customer   int64          `json:"customer"`
	Brand      int64          `json:"brand"`
	BudgetTier string         `json:"budget_tier"`
	MarginPct  float64        `json:"margin_pct"`
	GSTPct     float64        `json:"gst_pct"`
	Currency   string         `json:"currency"`
	Status     string         `json:"status"`
	Scopes     ProjectScopes  `json:"scopes"`
	Notes      *string        `json:"notes,omitempty"`
	Totals     *ProjectTotals `json:"totals,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// QuotationLine is one priced line of a server-computed quotation snapshot.
type QuotationLine struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Quotation is a server-computed quotation snapshot for one project scope.
type Quotation struct {
	Project    int64           `json:"project"`
	Scope      string          `json:"scope"` // "open" or "working"
	Lines      []QuotationLine `json:"lines"`
	Totals     ProjectTotals   `json:"totals"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// IsValidProjectStatus reports whether status is one of the known enum values.
func IsValidProjectStatus(status string) bool {
	for _, s := range ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}
