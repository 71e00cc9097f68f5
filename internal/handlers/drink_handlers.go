package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coffeehouse/internal/models"
	"coffeehouse/internal/services"
)

// DrinkHandlers handles drink catalog HTTP requests
type DrinkHandlers struct {
	service services.DrinkService
}

func NewDrinkHandlers(service services.DrinkService) *DrinkHandlers {
	return &DrinkHandlers{service: service}
}

func (h *DrinkHandlers) ListDrinks(c echo.Context) error {
	drinks, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, drinks)
}

func (h *DrinkHandlers) GetDrink(c echo.Context) error {
	drink, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, drink)
}

func (h *DrinkHandlers) CreateDrink(c echo.Context) error {
	var req models.NewDrink
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	drink, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, drink)
}

// UpdateDrink accepts base_price only; a payload naming any other field
// (including name) is rejected with 422.
func (h *DrinkHandlers) UpdateDrink(c echo.Context) error {
	var req models.UpdateDrink
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	drink, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, drink)
}

func (h *DrinkHandlers) DeleteDrink(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
