package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"coffeehouse/internal/dbtext"
)

// DrinkSize is the serving size of an order item.
type DrinkSize string

const (
	DrinkSizeSmall    DrinkSize = "small"
	DrinkSizeMedium   DrinkSize = "medium"
	DrinkSizeLarge    DrinkSize = "large"
	DrinkSizeStandard DrinkSize = "standard"
)

var drinkSizes = map[string]DrinkSize{
	"small":    DrinkSizeSmall,
	"medium":   DrinkSizeMedium,
	"large":    DrinkSizeLarge,
	"standard": DrinkSizeStandard,
}

// ParseDrinkSize accepts any casing and returns the canonical token.
func ParseDrinkSize(s string) (DrinkSize, error) {
	size, ok := drinkSizes[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: drink size %q", dbtext.ErrInvalidEnumValue, s)
	}
	return size, nil
}

func (s DrinkSize) String() string {
	return string(s)
}

func (s DrinkSize) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *DrinkSize) Scan(src interface{}) error {
	text, ok := src.(string)
	if !ok {
		if b, isBytes := src.([]byte); isBytes {
			text = string(b)
		} else {
			return fmt.Errorf("%w: drink size source %T", dbtext.ErrInvalidEnumValue, src)
		}
	}
	parsed, err := ParseDrinkSize(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s DrinkSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *DrinkSize) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return err
	}
	parsed, err := ParseDrinkSize(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
