package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/middleware"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/service"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreatePreliminaryOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_preliminary")

	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req struct {
		TotalAmount float64 `json:"total_amount"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	order, err := h.Svc.CreatePreliminaryOrder(ctx, userID, req.TotalAmount)
	if err != nil {
		return fail(c, err)
	}

	l.Info("preliminary_order_created", "order_id", order.ID)
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Preliminary order created successfully",
		"order_id": order.ID,
	})
}

func (h *OrderHTTP) UpdateWithUserInfo(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	var req struct {
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		StreetAddress string `json:"street_address"`
		City          string `json:"city"`
		State         string `json:"state"`
		Country       string `json:"country"`
		PostalCode    string `json:"postal_code"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	if _, err := h.Svc.AttachShippingInfo(ctx, orderID, service.ShippingInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		PostalCode:    req.PostalCode,
	}); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Order updated with user information successfully"})
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	order, err := h.Svc.GetOrder(ctx, orderID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) ReadOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	view, err := h.Svc.ReadOrder(ctx, orderID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *OrderHTTP) OrderDetails(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	details, err := h.Svc.Details(ctx, orderID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *OrderHTTP) ListMyOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	orders, err := h.Svc.ListForUser(ctx, userID, page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}

func (h *OrderHTTP) FinalizeOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.finalize")

	var req struct {
		OrderID     uint  `json:"orderId"`
		AmountMinor int64 `json:"amount"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	order, err := h.Svc.Finalize(ctx, req.OrderID, req.AmountMinor)
	if err != nil {
		return fail(c, err)
	}

	l.Info("order_finalized", "order_id", order.ID, "total", order.TotalAmount)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
