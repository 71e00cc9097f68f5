package repositories

import (
	"context"

	"coffeehouse/internal/models"
)

// Order items and their extras are written only by the composite order
// transaction; this repository is the read side.
type OrderItemRepository interface {
	ListByOrder(ctx context.Context, orderID string) ([]*models.OrderItem, error)
	ListExtrasByItem(ctx context.Context, orderItemID string) ([]*models.OrderItemExtra, error)
}

type orderItemsRepo struct {
	db Database
}

func NewOrderItemsRepo(db Database) OrderItemRepository {
	return &orderItemsRepo{db: db}
}

func (r *orderItemsRepo) ListByOrder(ctx context.Context, orderID string) ([]*models.OrderItem, error) {
	query := `
		SELECT id, order_id, drink_id, size, total_price
		FROM order_items
		WHERE order_id = $1
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DrinkID, &item.Size, &item.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderItemsRepo) ListExtrasByItem(ctx context.Context, orderItemID string) ([]*models.OrderItemExtra, error) {
	query := `
		SELECT id, order_item_id, extra_id
		FROM order_item_extras
		WHERE order_item_id = $1
	`
	rows, err := r.db.Query(ctx, query, orderItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extras []*models.OrderItemExtra
	for rows.Next() {
		extra := &models.OrderItemExtra{}
		if err := rows.Scan(&extra.ID, &extra.OrderItemID, &extra.ExtraID); err != nil {
			return nil, err
		}
		extras = append(extras, extra)
	}
	return extras, rows.Err()
}
