package models

import (
	"time"

	"github.com/shopspring/decimal"

	"coffeehouse/internal/dbtext"
)

// Order references its customer and employee by id only; items and extras are
// separate rows created alongside it in one transaction.
type Order struct {
	ID         string          `db:"id"`
	CustomerID string          `db:"customer_id"`
	EmployeeID string          `db:"employee_id"`
	Status     OrderStatus     `db:"status"`
	CreatedAt  dbtext.DateTime `db:"created_at"`
	UpdatedAt  dbtext.DateTime `db:"updated_at"`
}

type OrderAPIModel struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	EmployeeID string      `json:"employee_id"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type NewOrder struct {
	CustomerID string      `json:"customer_id"`
	EmployeeID string      `json:"employee_id"`
	Status     OrderStatus `json:"status"`
}

// IncomingOrder is the composite creation payload: one order plus its nested
// items and their extra ids. Prices arrive pre-computed by the caller and are
// stored as given, never recomputed.
type IncomingOrder struct {
	CustomerID string              `json:"customer_id"`
	EmployeeID string              `json:"employee_id"`
	Status     OrderStatus         `json:"status"`
	Items      []IncomingOrderItem `json:"items"`
}

type IncomingOrderItem struct {
	DrinkID    string          `json:"drink_id"`
	Size       DrinkSize       `json:"size"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Extras     []string        `json:"extras"`
}

func OrderFromNew(in NewOrder, id string) Order {
	now := time.Now().UTC()
	return Order{
		ID:         id,
		CustomerID: in.CustomerID,
		EmployeeID: in.EmployeeID,
		Status:     in.Status,
		CreatedAt:  dbtext.NewDateTime(now),
		UpdatedAt:  dbtext.NewDateTime(now),
	}
}

func (o Order) ToAPIModel() OrderAPIModel {
	return OrderAPIModel{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		EmployeeID: o.EmployeeID,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt.Time,
		UpdatedAt:  o.UpdatedAt.Time,
	}
}
