package models

// OrderItemExtra is a pure join row linking an order item to an extra. It has
// no independent lifecycle; rows exist only as part of their order's creation.
type OrderItemExtra struct {
	ID          string `db:"id"`
	OrderItemID string `db:"order_item_id"`
	ExtraID     string `db:"extra_id"`
}

type OrderItemExtraAPIModel struct {
	ID          string `json:"id"`
	OrderItemID string `json:"order_item_id"`
	ExtraID     string `json:"extra_id"`
}

type NewOrderItemExtra struct {
	OrderItemID string
	ExtraID     string
}

func OrderItemExtraFromNew(in NewOrderItemExtra, id string) OrderItemExtra {
	return OrderItemExtra{
		ID:          id,
		OrderItemID: in.OrderItemID,
		ExtraID:     in.ExtraID,
	}
}

func (e OrderItemExtra) ToAPIModel() OrderItemExtraAPIModel {
	return OrderItemExtraAPIModel{
		ID:          e.ID,
		OrderItemID: e.OrderItemID,
		ExtraID:     e.ExtraID,
	}
}
