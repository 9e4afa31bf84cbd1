package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/service"
)

type NailSizeHTTP struct {
	Svc *service.NailSizeService
}

func (h *NailSizeHTTP) List(c echo.Context) error {
	options, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, options)
}

func (h *NailSizeHTTP) Create(c echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	option, err := h.Svc.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, option)
}
