package models

import "time"

// Workflow states trace a customer through the fabrication pipeline.
const (
	WorkflowStateLead         = "LEAD"
	WorkflowStatePipeline     = "PIPELINE"
	WorkflowStateDesign       = "DESIGN"
	WorkflowStateConfirmation = "CONFIRMATION"
	WorkflowStateProduction   = "PRODUCTION"
	WorkflowStateInstallation = "INSTALLATION"
	WorkflowStateSignOut      = "SIGN_OUT"
)

// WorkflowStates lists the pipeline stages in order.
var WorkflowStates = []string{
	WorkflowStateLead,
	WorkflowStatePipeline,
	WorkflowStateDesign,
	WorkflowStateConfirmation,
	WorkflowStateProduction,
	WorkflowStateInstallation,
	WorkflowStateSignOut,
}

// KitchenTypeCount records how many kitchens of one type a customer ordered.
type KitchenTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Customer represents an intake customer moving through the workflow.
type Customer struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Location      *string            `json:"location,omitempty"`
	ContactNumber string             `json:"contact_number"`
	State         string             `json:"state"`
	KitchenTypes  []KitchenTypeCount `json:"kitchen_types,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// RequirementDocument is an uploaded customer requirement file reference.
type RequirementDocument struct {
	ID         int64     `json:"id"`
	Customer   int64     `json:"customer"`
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// IsValidWorkflowState reports whether state is one of the known stages.
func IsValidWorkflowState(state string) bool {
	for _, s := range WorkflowStates {
		if s == state {
			return true
		}
	}
	return false
}
