package domain

import "time"

type ItemCondition string

const (
	ItemConditionExcellent ItemCondition = "excellent"
	ItemConditionGood      ItemCondition = "good"
	ItemConditionFair      ItemCondition = "fair"
	ItemConditionPoor      ItemCondition = "poor"
	ItemConditionBroken    ItemCondition = "broken"
)

func ValidItemCondition(s string) bool {
	switch ItemCondition(s) {
	case ItemConditionExcellent, ItemConditionGood, ItemConditionFair, ItemConditionPoor, ItemConditionBroken:
		return true
	}
	return false
}

// Item is a piece of inventory (appliance, furniture) installed in a unit.
type Item struct {
	ID           string        `json:"id"`
	UnitID       string        `json:"unit_id"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	Brand        string        `json:"brand,omitempty"`
	Model        string        `json:"model,omitempty"`
	PurchaseDate *string       `json:"purchase_date,omitempty"`
	Condition    ItemCondition `json:"condition"`
	Notes        string        `json:"notes,omitempty"`
	CreatedBy    string        `json:"created_by,omitempty"`
	UpdatedBy    string        `json:"updated_by,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
