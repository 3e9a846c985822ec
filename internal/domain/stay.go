package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StayStatus string

const (
	StayStatusActive    StayStatus = "active"
	StayStatusCompleted StayStatus = "completed"
	StayStatusCancelled StayStatus = "cancelled"
)

func ValidStayStatus(s string) bool {
	switch StayStatus(s) {
	case StayStatusActive, StayStatusCompleted, StayStatusCancelled:
		return true
	}
	return false
}

// Stay links a Guest to a Unit for a date range at a monthly rent.
// Dates travel as "2006-01-02" strings.
type Stay struct {
	ID          string          `json:"id"`
	UnitID      string          `json:"unit_id"`
	GuestID     string          `json:"guest_id"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date,omitempty"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Status      StayStatus      `json:"status"`
	CreatedBy   string          `json:"created_by,omitempty"`
	UpdatedBy   string          `json:"updated_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StayDetails is the list projection joined with unit and guest display
// fields.
type StayDetails struct {
	Stay
	UnitNumber    string `json:"unit_number"`
	GuestFullName string `json:"guest_full_name"`
}
