package services

import (
	"context"

	"github.com/google/uuid"

	"coffeehouse/internal/common"
	"coffeehouse/internal/models"
	"coffeehouse/internal/repositories"
	"coffeehouse/pkg/logger"
)

type OrderService interface {
	List(ctx context.Context) ([]models.OrderAPIModel, error)
	Get(ctx context.Context, id string) (models.OrderAPIModel, error)
	// Create runs the composite transaction: one order, its items, their
	// extras, all or nothing. Returns the persisted order only; items and
	// extras are queryable separately.
	Create(ctx context.Context, in models.IncomingOrder) (models.OrderAPIModel, error)
	ListItems(ctx context.Context, orderID string) ([]models.OrderItemDetail, error)
}

type orderService struct {
	orders repositories.OrderRepository
	items  repositories.OrderItemRepository
}

func NewOrderService(orders repositories.OrderRepository, items repositories.OrderItemRepository) OrderService {
	return &orderService{orders: orders, items: items}
}

func (s *orderService) List(ctx context.Context) ([]models.OrderAPIModel, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		logger.Error.WithError(err).Error("listing orders failed")
		return nil, common.Internalf("list orders")
	}
	out := make([]models.OrderAPIModel, 0, len(orders))
	for _, order := range orders {
		out = append(out, order.ToAPIModel())
	}
	return out, nil
}

func (s *orderService) Get(ctx context.Context, id string) (models.OrderAPIModel, error) {
	if err := common.ValidateID(id, "order id"); err != nil {
		return models.OrderAPIModel{}, err
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if common.IsNoRows(err) {
			return models.OrderAPIModel{}, common.NotFoundf("order %s", id)
		}
		logger.Error.WithError(err).WithField("order_id", id).Error("loading order failed")
		return models.OrderAPIModel{}, common.Internalf("load order")
	}
	return order.ToAPIModel(), nil
}

// Create trusts the caller's referenced ids and pre-computed item prices.
// Dangling customer, employee, drink or extra references are rejected by the
// schema's foreign keys, which rolls the whole transaction back.
func (s *orderService) Create(ctx context.Context, in models.IncomingOrder) (models.OrderAPIModel, error) {
	if err := common.ValidateID(in.CustomerID, "customer_id"); err != nil {
		return models.OrderAPIModel{}, err
	}
	if err := common.ValidateID(in.EmployeeID, "employee_id"); err != nil {
		return models.OrderAPIModel{}, err
	}
	if in.Status == "" {
		return models.OrderAPIModel{}, common.InvalidInputf("status is required")
	}
	for _, item := range in.Items {
		if err := common.ValidateID(item.DrinkID, "drink_id"); err != nil {
			return models.OrderAPIModel{}, err
		}
		if item.Size == "" {
			return models.OrderAPIModel{}, common.InvalidInputf("size is required")
		}
		for _, extraID := range item.Extras {
			if err := common.ValidateID(extraID, "extra id"); err != nil {
				return models.OrderAPIModel{}, err
			}
		}
	}

	order := models.OrderFromNew(models.NewOrder{
		CustomerID: in.CustomerID,
		EmployeeID: in.EmployeeID,
		Status:     in.Status,
	}, uuid.NewString())

	rows := make([]repositories.OrderItemRow, 0, len(in.Items))
	for _, incoming := range in.Items {
		item := models.OrderItemFromNew(models.NewOrderItem{
			OrderID:    order.ID,
			DrinkID:    incoming.DrinkID,
			Size:       incoming.Size,
			TotalPrice: incoming.TotalPrice,
		}, uuid.NewString())

		extras := make([]*models.OrderItemExtra, 0, len(incoming.Extras))
		for _, extraID := range incoming.Extras {
			extra := models.OrderItemExtraFromNew(models.NewOrderItemExtra{
				OrderItemID: item.ID,
				ExtraID:     extraID,
			}, uuid.NewString())
			extras = append(extras, &extra)
		}
		rows = append(rows, repositories.OrderItemRow{Item: &item, Extras: extras})
	}

	if err := s.orders.CreateWithItems(ctx, &order, rows); err != nil {
		logger.Error.WithError(err).Error("order creation failed")
		return models.OrderAPIModel{}, common.Internalf("order creation failed")
	}
	return order.ToAPIModel(), nil
}

func (s *orderService) ListItems(ctx context.Context, orderID string) ([]models.OrderItemDetail, error) {
	if err := common.ValidateID(orderID, "order id"); err != nil {
		return nil, err
	}
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		if common.IsNoRows(err) {
			return nil, common.NotFoundf("order %s", orderID)
		}
		logger.Error.WithError(err).WithField("order_id", orderID).Error("loading order failed")
		return nil, common.Internalf("load order")
	}

	items, err := s.items.ListByOrder(ctx, orderID)
	if err != nil {
		logger.Error.WithError(err).WithField("order_id", orderID).Error("listing order items failed")
		return nil, common.Internalf("list order items")
	}

	out := make([]models.OrderItemDetail, 0, len(items))
	for _, item := range items {
		extras, err := s.items.ListExtrasByItem(ctx, item.ID)
		if err != nil {
			logger.Error.WithError(err).WithField("order_item_id", item.ID).Error("listing item extras failed")
			return nil, common.Internalf("list order item extras")
		}
		extraIDs := make([]string, 0, len(extras))
		for _, extra := range extras {
			extraIDs = append(extraIDs, extra.ExtraID)
		}
		out = append(out, models.OrderItemDetail{
			OrderItemAPIModel: item.ToAPIModel(),
			ExtraIDs:          extraIDs,
		})
	}
	return out, nil
}
