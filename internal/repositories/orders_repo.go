package repositories

import (
	"context"
	"fmt"

	"coffeehouse/internal/models"
)

// OrderItemRow pairs an item with the join rows that belong to it, in the
// order they were given.
type OrderItemRow struct {
	Item   *models.OrderItem
	Extras []*models.OrderItemExtra
}

type OrderRepository interface {
	List(ctx context.Context) ([]*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// CreateWithItems inserts the order and every nested row inside one
	// transaction. On the first failing insert the whole unit rolls back;
	// no partial order, item or extra row survives.
	CreateWithItems(ctx context.Context, order *models.Order, items []OrderItemRow) error
}

type ordersRepo struct {
	db Database
}

func NewOrdersRepo(db Database) OrderRepository {
	return &ordersRepo{db: db}
}

func (r *ordersRepo) List(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT id, customer_id, employee_id, status, created_at, updated_at
		FROM orders
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.EmployeeID, &order.Status, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *ordersRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, customer_id, employee_id, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.CustomerID, &order.EmployeeID, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *ordersRepo) CreateWithItems(ctx context.Context, order *models.Order, items []OrderItemRow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	// No-op after a successful commit.
	defer tx.Rollback(ctx)

	insertOrder := `
		INSERT INTO orders (id, customer_id, employee_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.Exec(ctx, insertOrder, order.ID, order.CustomerID, order.EmployeeID, order.Status, order.CreatedAt, order.UpdatedAt); err != nil {
		return fmt.Errorf("insert order %s: %w", order.ID, err)
	}

	insertItem := `
		INSERT INTO order_items (id, order_id, drink_id, size, total_price)
		VALUES ($1, $2, $3, $4, $5)
	`
	insertExtra := `
		INSERT INTO order_item_extras (id, order_item_id, extra_id)
		VALUES ($1, $2, $3)
	`
	for _, row := range items {
		item := row.Item
		if _, err := tx.Exec(ctx, insertItem, item.ID, item.OrderID, item.DrinkID, item.Size, item.TotalPrice); err != nil {
			return fmt.Errorf("insert order item %s: %w", item.ID, err)
		}
		for _, extra := range row.Extras {
			if _, err := tx.Exec(ctx, insertExtra, extra.ID, extra.OrderItemID, extra.ExtraID); err != nil {
				return fmt.Errorf("insert order item extra %s: %w", extra.ID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order transaction: %w", err)
	}
	return nil
}
