package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coffeehouse/internal/models"
	"coffeehouse/internal/services"
)

type OrderHandlers struct {
	service services.OrderService
}

func NewOrderHandlers(service services.OrderService) *OrderHandlers {
	return &OrderHandlers{service: service}
}

func (h *OrderHandlers) ListOrders(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandlers) GetOrder(c echo.Context) error {
	order, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// CreateOrder creates the order and all of its nested items and extras in one
// transaction. The response carries the order only; items are fetched via
// GET /orders/:id/items.
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	var req models.IncomingOrder
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	order, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandlers) ListOrderItems(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
