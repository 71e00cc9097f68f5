package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"coffeehouse/internal/dbtext"
)

// OrderStatus is the lifecycle state of an order. One lowercase token table is
// shared by the database encoding and the JSON encoding so the two can't drift.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderStatuses = map[string]OrderStatus{
	"pending":   OrderStatusPending,
	"paid":      OrderStatusPaid,
	"preparing": OrderStatusPreparing,
	"ready":     OrderStatusReady,
	"completed": OrderStatusCompleted,
	"cancelled": OrderStatusCancelled,
}

// ParseOrderStatus accepts any casing and returns the canonical token.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status, ok := orderStatuses[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: order status %q", dbtext.ErrInvalidEnumValue, s)
	}
	return status, nil
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *OrderStatus) Scan(src interface{}) error {
	text, ok := src.(string)
	if !ok {
		if b, isBytes := src.([]byte); isBytes {
			text = string(b)
		} else {
			return fmt.Errorf("%w: order status source %T", dbtext.ErrInvalidEnumValue, src)
		}
	}
	parsed, err := ParseOrderStatus(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *OrderStatus) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return err
	}
	parsed, err := ParseOrderStatus(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
