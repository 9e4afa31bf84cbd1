package mail

import (
	"context"
	"fmt"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender dispatches a single message. Implementations are best-effort: the
// order flow logs failures and moves on.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// OrderConfirmation is the customer-facing message sent once an order is paid.
func OrderConfirmation(to string, orderID uint) Message {
	return Message{
		To:      to,
		Subject: "Order Confirmation",
		Body:    fmt.Sprintf("Thank you for your order! Your order ID is %d.", orderID),
	}
}

// NewOrderAlert is the internal heads-up sent to the shop operator.
func NewOrderAlert(to string, orderID uint) Message {
	return Message{
		To:      to,
		Subject: "New Order Received",
		Body:    fmt.Sprintf("A new order (ID: %d) has been placed.", orderID),
	}
}
