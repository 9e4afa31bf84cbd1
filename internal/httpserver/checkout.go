package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	stripe "github.com/stripe/stripe-go/v82"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/payments"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/service"
)

type CheckoutHTTP struct {
	Svc *service.CheckoutService
}

type checkoutRequest struct {
	OrderID uint                        `json:"order_id"`
	Items   []service.CheckoutItemInput `json:"items"`
}

func (h *CheckoutHTTP) CreateSession(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.OrderID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order_id is required"})
	}

	session, err := h.Svc.CreateSession(c.Request().Context(), req.OrderID, req.Items)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":  session.ID,
		"url": session.URL,
	})
}

// WebhookHTTP receives provider callbacks. The payload signature is verified
// before anything is parsed, so a bad signature never reaches the order flow.
type WebhookHTTP struct {
	Payments *payments.Client
	Orders   *service.OrderService
}

const maxWebhookBody = 1 << 16

func (h *WebhookHTTP) Handle(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "webhook")

	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable body"})
	}

	event, err := h.Payments.VerifyEvent(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		l.Warn("webhook_signature_rejected", "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "signature verification failed"})
	}

	if event.Type != "payment_intent.succeeded" {
		// Other event types are acknowledged without action.
		return c.JSON(http.StatusOK, echo.Map{"received": true})
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		l.Error("webhook_payload_invalid", "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event payload"})
	}

	orderID, err := strconv.ParseUint(intent.Metadata[payments.MetadataOrderID], 10, 64)
	if err != nil {
		l.Error("webhook_missing_order_id", "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing order id"})
	}

	if _, err := h.Orders.Finalize(ctx, uint(orderID), intent.Amount); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"received": true})
}
