package domain

import "time"

type UnitStatus string

const (
	UnitStatusAvailable   UnitStatus = "available"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusMaintenance UnitStatus = "maintenance"
	UnitStatusInactive    UnitStatus = "inactive"
)

// ValidUnitStatus reports whether s is one of the known unit statuses.
func ValidUnitStatus(s string) bool {
	switch UnitStatus(s) {
	case UnitStatusAvailable, UnitStatusOccupied, UnitStatusMaintenance, UnitStatusInactive:
		return true
	}
	return false
}

// Unit is a rentable space belonging to an Address. Its status tracks the
// most recent active stay referencing it: an active stay means occupied,
// and ending or re-assigning that stay frees it back to available.
// Maintenance and inactive are manual choices and are not touched by the
// stay lifecycle.
type Unit struct {
	ID          string     `json:"id"`
	AddressID   string     `json:"address_id"`
	UnitNumber  string     `json:"unit_number"`
	Description string     `json:"description,omitempty"`
	Status      UnitStatus `json:"status"`
	CreatedBy   string     `json:"created_by,omitempty"`
	UpdatedBy   string     `json:"updated_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
