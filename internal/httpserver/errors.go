package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/service"
)

// fail translates a service error into a JSON error body. Unknown errors
// are logged and returned as an opaque 500 so provider and storage messages
// never reach clients.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInsufficientStock):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrProvider):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "upstream provider error"})
	default:
		logging.FromContext(c.Request().Context()).Error("internal_error", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
