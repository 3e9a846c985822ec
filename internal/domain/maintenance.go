package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MaintenanceStatus string

const (
	MaintenanceStatusReported   MaintenanceStatus = "reported"
	MaintenanceStatusScheduled  MaintenanceStatus = "scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

func ValidMaintenanceStatus(s string) bool {
	switch MaintenanceStatus(s) {
	case MaintenanceStatusReported, MaintenanceStatusScheduled, MaintenanceStatusInProgress,
		MaintenanceStatusCompleted, MaintenanceStatusCancelled:
		return true
	}
	return false
}

// MaintenanceLog records a repair on a unit, optionally tied to an item.
// DateCompleted, Cost and ServiceProvider are meaningful only when the
// status is completed; they are cleared on save otherwise.
type MaintenanceLog struct {
	ID              string              `json:"id"`
	UnitID          string              `json:"unit_id"`
	ItemID          *string             `json:"item_id,omitempty"`
	Description     string              `json:"description"`
	DateReported    string              `json:"date_reported"`
	DateCompleted   *string             `json:"date_completed,omitempty"`
	Cost            decimal.NullDecimal `json:"cost,omitempty"`
	ServiceProvider *string             `json:"service_provider,omitempty"`
	Status          MaintenanceStatus   `json:"status"`
	Notes           string              `json:"notes,omitempty"`
	CreatedBy       string              `json:"created_by,omitempty"`
	UpdatedBy       string              `json:"updated_by,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// MaintenanceFilters are the equality filters of the maintenance log list.
type MaintenanceFilters struct {
	UnitID string
	ItemID string
	Status string
}
