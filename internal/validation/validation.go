// Package validation checks raw form input against each entity's schema
// before anything reaches persistence. Money and count fields arrive as
// text and are coerced here; a failed check never produces a partial
// payload.
package validation

import (
	"regexp"
	"time"

	"pousada-backend/internal/domain"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// requireDate validates a mandatory date field.
func requireDate(verr *domain.ValidationError, field, value string) {
	if value == "" {
		verr.Add(field, "is required")
		return
	}
	if !validDate(value) {
		verr.Add(field, "must be a date in YYYY-MM-DD format")
	}
}

// optionalDate validates an optional date field and returns nil when blank.
func optionalDate(verr *domain.ValidationError, field, value string) *string {
	if value == "" {
		return nil
	}
	if !validDate(value) {
		verr.Add(field, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return &value
}

// requireMoney coerces a mandatory textual amount; positive-only when
// positive is set.
func requireMoney(verr *domain.ValidationError, field, value string, positive bool) decimal.Decimal {
	if value == "" {
		verr.Add(field, "is required")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		verr.Add(field, "must be a number")
		return decimal.Zero
	}
	if positive && !d.IsPositive() {
		verr.Add(field, "must be greater than zero")
	}
	return d
}

// optionalMoney coerces an optional textual amount.
func optionalMoney(verr *domain.ValidationError, field, value string) decimal.NullDecimal {
	if value == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		verr.Add(field, "must be a number")
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func requireString(verr *domain.ValidationError, field, value string) {
	if value == "" {
		verr.Add(field, "is required")
	}
}

func optionalPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
