package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coffeehouse/internal/models"
	"coffeehouse/internal/services"
)

type EmployeeHandlers struct {
	service services.EmployeeService
}

func NewEmployeeHandlers(service services.EmployeeService) *EmployeeHandlers {
	return &EmployeeHandlers{service: service}
}

func (h *EmployeeHandlers) ListEmployees(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandlers) GetEmployee(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandlers) CreateEmployee(c echo.Context) error {
	var req models.NewEmployee
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	employee, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee accepts name and email; birth_date is immutable, so its
// presence in the payload is rejected with 422.
func (h *EmployeeHandlers) UpdateEmployee(c echo.Context) error {
	var req models.UpdateEmployee
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	employee, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandlers) DeleteEmployee(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
