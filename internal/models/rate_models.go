package models

import "time"

// MaxUnitRate is the upper bound accepted for a door finish rate.
const MaxUnitRate = 999999.0

// DoorRate represents a per-material door finish rate with an effective
// date range. Open-ended ranges leave effective_to null.
type DoorRate struct {
	ID            int64     `json:"id"`
	Material      int64     `json:"material"`
	MaterialName  string    `json:"material_name,omitempty"` // read-only join from the backend
	UnitRate      float64   `json:"unit_rate"`
	Currency      string    `json:"currency"`
	EffectiveFrom *string   `json:"effective_from,omitempty"` // YYYY-MM-DD
	EffectiveTo   *string   `json:"effective_to,omitempty"`   // YYYY-MM-DD
	IsActive      bool      `json:"is_active"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DoorRateHistoryEntry is one superseded rate row for a material.
type DoorRateHistoryEntry struct {
	ID            int64   `json:"id"`
	Material      int64   `json:"material"`
	UnitRate      float64 `json:"unit_rate"`
	Currency      string  `json:"currency"`
	EffectiveFrom *string `json:"effective_from,omitempty"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
	ReplacedAt    *string `json:"replaced_at,omitempty"`
}

// BulkRateUpdate is one row of a bulk price revision request.
type BulkRateUpdate struct {
	ID       int64   `json:"id"`
	UnitRate float64 `json:"unit_rate"`
}
