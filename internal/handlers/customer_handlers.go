package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coffeehouse/internal/models"
	"coffeehouse/internal/services"
)

// CustomerHandlers handles customer-related HTTP requests
type CustomerHandlers struct {
	service services.CustomerService
}

func NewCustomerHandlers(service services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{service: service}
}

// ListCustomers returns every active (not soft-deleted) customer.
func (h *CustomerHandlers) ListCustomers(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandlers) GetCustomer(c echo.Context) error {
	customer, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandlers) CreateCustomer(c echo.Context) error {
	var req models.NewCustomer
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	customer, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer accepts only name and email; any other field is rejected
// with 422.
func (h *CustomerHandlers) UpdateCustomer(c echo.Context) error {
	var req models.UpdateCustomer
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	customer, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandlers) DeleteCustomer(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
