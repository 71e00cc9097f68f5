package models

import (
	"github.com/shopspring/decimal"

	"coffeehouse/internal/dbtext"
)

// OrderItem belongs to an order; total_price is the caller-computed sum of the
// drink base price and the item's extras.
type OrderItem struct {
	ID         string         `db:"id"`
	OrderID    string         `db:"order_id"`
	DrinkID    string         `db:"drink_id"`
	Size       DrinkSize      `db:"size"`
	TotalPrice dbtext.Decimal `db:"total_price"`
}

type OrderItemAPIModel struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	DrinkID    string          `json:"drink_id"`
	Size       DrinkSize       `json:"size"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderItemDetail is an order item together with the ids of its extras.
type OrderItemDetail struct {
	OrderItemAPIModel
	ExtraIDs []string `json:"extras"`
}

type NewOrderItem struct {
	OrderID    string
	DrinkID    string
	Size       DrinkSize
	TotalPrice decimal.Decimal
}

func OrderItemFromNew(in NewOrderItem, id string) OrderItem {
	return OrderItem{
		ID:         id,
		OrderID:    in.OrderID,
		DrinkID:    in.DrinkID,
		Size:       in.Size,
		TotalPrice: dbtext.NewDecimal(in.TotalPrice),
	}
}

func (i OrderItem) ToAPIModel() OrderItemAPIModel {
	return OrderItemAPIModel{
		ID:         i.ID,
		OrderID:    i.OrderID,
		DrinkID:    i.DrinkID,
		Size:       i.Size,
		TotalPrice: i.TotalPrice.Decimal,
	}
}
