package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeRole string

const (
	EmployeeRoleManager      EmployeeRole = "manager"
	EmployeeRoleReceptionist EmployeeRole = "receptionist"
	EmployeeRoleCleaner      EmployeeRole = "cleaner"
	EmployeeRoleMaintenance  EmployeeRole = "maintenance"
	EmployeeRoleSecurity     EmployeeRole = "security"
	EmployeeRoleOther        EmployeeRole = "other"
)

func ValidEmployeeRole(s string) bool {
	switch EmployeeRole(s) {
	case EmployeeRoleManager, EmployeeRoleReceptionist, EmployeeRoleCleaner,
		EmployeeRoleMaintenance, EmployeeRoleSecurity, EmployeeRoleOther:
		return true
	}
	return false
}

// Employee is a staff member. A nil EndDate means the employee is active.
type Employee struct {
	ID        string              `json:"id"`
	FullName  string              `json:"full_name"`
	Role      EmployeeRole        `json:"role"`
	Phone     string              `json:"phone,omitempty"`
	Email     string              `json:"email,omitempty"`
	StartDate string              `json:"start_date"`
	EndDate   *string             `json:"end_date,omitempty"`
	Salary    decimal.NullDecimal `json:"salary,omitempty"`
	Notes     string              `json:"notes,omitempty"`
	CreatedBy string              `json:"created_by,omitempty"`
	UpdatedBy string              `json:"updated_by,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
