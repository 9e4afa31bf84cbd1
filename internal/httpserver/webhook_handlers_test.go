package httpserver

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
)

func stripeEventPayload(eventType string, orderID uint, amount int64) string {
	return fmt.Sprintf(`{
		"id": "evt_test_1",
		"api_version": %q,
		"type": %q,
		"data": {
			"object": {
				"id": "pi_test_1",
				"object": "payment_intent",
				"amount": %d,
				"metadata": {"order_id": "%d"}
			}
		}
	}`, stripe.APIVersion, eventType, amount, orderID)
}

func signStripePayload(payload, secret string) string {
	now := time.Now()
	sig := webhook.ComputeSignature(now, []byte(payload), secret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

func postWebhook(env *testEnv, payload, sigHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sigHeader != "" {
		req.Header.Set("Stripe-Signature", sigHeader)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func seedOrder(t *testing.T, env *testEnv, userID uint, status string) *models.Order {
	t.Helper()
	order := models.Order{UserID: userID, Status: status, TotalAmount: 0}
	require.NoError(t, env.DB.Create(&order).Error)
	return &order
}

func TestWebhookPaymentSucceededMarksOrderPaid(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	order := seedOrder(t, env, 1, models.OrderStatusUpdating)

	payload := stripeEventPayload("payment_intent.succeeded", order.ID, 1234)
	rec := postWebhook(env, payload, signStripePayload(payload, testWebhookSecret))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)

	var got models.Order
	require.NoError(t, env.DB.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusPaid, got.Status)
	assert.InDelta(t, 12.34, got.TotalAmount, 1e-9)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	order := seedOrder(t, env, 1, models.OrderStatusUpdating)

	payload := stripeEventPayload("payment_intent.succeeded", order.ID, 1234)

	tests := []struct {
		name      string
		sigHeader string
	}{
		{name: "missing header", sigHeader: ""},
		{name: "wrong secret", sigHeader: signStripePayload(payload, "whsec_other_secret")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := postWebhook(env, payload, tt.sigHeader)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// A rejected delivery never touches the order.
	var got models.Order
	require.NoError(t, env.DB.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusUpdating, got.Status)
}

func TestWebhookIgnoresOtherEventTypes(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	order := seedOrder(t, env, 1, models.OrderStatusUpdating)

	payload := stripeEventPayload("payment_intent.created", order.ID, 1234)
	rec := postWebhook(env, payload, signStripePayload(payload, testWebhookSecret))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)

	var got models.Order
	require.NoError(t, env.DB.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusUpdating, got.Status)
}

func TestWebhookUnknownOrder(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	payload := stripeEventPayload("payment_intent.succeeded", 999, 1234)
	rec := postWebhook(env, payload, signStripePayload(payload, testWebhookSecret))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
