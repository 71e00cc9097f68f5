package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coffeehouse/internal/models"
	"coffeehouse/internal/services"
)

type ExtraHandlers struct {
	service services.ExtraService
}

func NewExtraHandlers(service services.ExtraService) *ExtraHandlers {
	return &ExtraHandlers{service: service}
}

func (h *ExtraHandlers) ListExtras(c echo.Context) error {
	extras, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, extras)
}

func (h *ExtraHandlers) GetExtra(c echo.Context) error {
	extra, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, extra)
}

func (h *ExtraHandlers) CreateExtra(c echo.Context) error {
	var req models.NewExtra
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	extra, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, extra)
}

func (h *ExtraHandlers) UpdateExtra(c echo.Context) error {
	var req models.UpdateExtra
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	extra, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, extra)
}
