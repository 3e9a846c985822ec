package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	}
	return false
}

type Payment struct {
	ID             string          `json:"id"`
	StayID         string          `json:"stay_id"`
	PaymentDate    string          `json:"payment_date"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	ReferenceMonth int             `json:"reference_month"`
	ReferenceYear  int             `json:"reference_year"`
	Status         PaymentStatus   `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	CreatedBy      string          `json:"created_by,omitempty"`
	UpdatedBy      string          `json:"updated_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PaymentDetails is the list projection joined through the stay with unit
// and guest display fields.
type PaymentDetails struct {
	Payment
	UnitNumber    string `json:"unit_number"`
	GuestFullName string `json:"guest_full_name"`
}

// PaymentFilters are the equality filters of the payments list view.
// UnitID and GuestID live on the joined stay and are resolved as a
// two-step lookup.
type PaymentFilters struct {
	UnitID  string
	GuestID string
	Month   int
	Year    int
	Status  string
}

// OverdueNotice is what the nightly overdue job needs to notify a guest
// about an unpaid month.
type OverdueNotice struct {
	PaymentID      string
	GuestFullName  string
	GuestEmail     string
	UnitNumber     string
	ReferenceMonth int
	ReferenceYear  int
	Amount         decimal.Decimal
}
