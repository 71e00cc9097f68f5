package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"coffeehouse/internal/common"
)

// respondError maps the persistence core's error kinds to status codes.
// Internal errors get a generic body; the cause is already logged below.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, common.CreateErrorResponse("INVALID_INPUT", err.Error()))
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, common.CreateErrorResponse("NOT_FOUND", err.Error()))
	case errors.Is(err, common.ErrConflict):
		return c.JSON(http.StatusConflict, common.CreateErrorResponse("CONFLICT", err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, common.CreateErrorResponse("INTERNAL_ERROR", "internal server error"))
	}
}

// bindStrict decodes a payload rejecting unknown fields. Update payloads have
// a strict schema: a field outside the declared mutable set is a 422, a
// malformed body a 400.
func bindStrict(c echo.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "Unknown field in request payload")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	return nil
}
