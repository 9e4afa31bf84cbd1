package payments

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// orderIDPlaceholder is substituted into the configured success/cancel URL
// templates.
const orderIDPlaceholder = "{ORDER_ID}"

const MetadataOrderID = "order_id"

type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type Session struct {
	ID  string
	URL string
}

// Client wraps the Stripe SDK behind an explicitly constructed object so
// handlers never touch package-level state.
type Client struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewClient(apiKey, webhookSecret, successURL, cancelURL string) *Client {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &Client{
		api:           api,
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
	}
}

// ToMinorUnits converts a decimal price into integer cents.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func expandURL(template string, orderID uint) string {
	return strings.ReplaceAll(template, orderIDPlaceholder, strconv.FormatUint(uint64(orderID), 10))
}

// CreateCheckoutSession requests a hosted payment page for the given order.
// The order id rides along in the payment intent metadata so the webhook can
// find its way back.
func (c *Client) CreateCheckoutSession(ctx context.Context, orderID uint, items []LineItem) (*Session, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("payments: no line items")
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyUSD)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
				UnitAmount: stripe.Int64(it.UnitAmount),
			},
			Quantity: stripe.Int64(it.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(expandURL(c.successURL, orderID)),
		CancelURL:  stripe.String(expandURL(c.cancelURL, orderID)),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				MetadataOrderID: strconv.FormatUint(uint64(orderID), 10),
			},
		},
	}

	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("payments: create checkout session: %w", err)
	}
	return &Session{ID: s.ID, URL: s.URL}, nil
}

// VerifyEvent checks the webhook signature against the endpoint secret.
func (c *Client) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
}
