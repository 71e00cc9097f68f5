package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateRequiredString rejects empty or all-whitespace values.
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return InvalidInputf("%s is required", fieldName)
	}
	return nil
}

// ValidateEmail performs the minimal check the API promises: non-empty and
// containing an "@".
func ValidateEmail(email string) error {
	if err := ValidateRequiredString(email, "email"); err != nil {
		return err
	}
	if !strings.Contains(email, "@") {
		return InvalidInputf("email %q is not a valid address", email)
	}
	return nil
}

// ValidatePositivePrice rejects zero and negative amounts.
func ValidatePositivePrice(price decimal.Decimal, fieldName string) error {
	if price.Sign() <= 0 {
		return InvalidInputf("%s must be greater than zero", fieldName)
	}
	return nil
}

// ValidateID rejects blank identifiers before they reach a query.
func ValidateID(id, fieldName string) error {
	if strings.TrimSpace(id) == "" {
		return InvalidInputf("%s must not be blank", fieldName)
	}
	return nil
}
