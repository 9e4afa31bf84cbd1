package service

import (
	"context"
	"fmt"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/payments"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/repo"
)

type CheckoutService struct {
	Repo     *repo.GormRepo
	Payments *payments.Client
}

// CheckoutItemInput is a raw line item supplied directly in the request
// body, bypassing the persisted order items.
type CheckoutItemInput struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// CreateSession requests a hosted payment session for the order. Line items
// come from the request body when given, otherwise from the order's
// persisted items, with prices converted to integer minor units either way.
func (s *CheckoutService) CreateSession(ctx context.Context, orderID uint, raw []CheckoutItemInput) (*payments.Session, error) {
	l := logging.FromContext(ctx).With("svc", "checkout.create_session", "order_id", orderID)

	var lineItems []payments.LineItem
	if len(raw) > 0 {
		for _, item := range raw {
			if item.Name == "" || item.Quantity <= 0 || item.Price < 0 {
				return nil, fmt.Errorf("%w: invalid line item", ErrValidation)
			}
			lineItems = append(lineItems, payments.LineItem{
				Name:       item.Name,
				UnitAmount: payments.ToMinorUnits(item.Price),
				Quantity:   item.Quantity,
			})
		}
	} else {
		order, err := s.Repo.GetOrder(ctx, orderID)
		if err != nil {
			if repo.NotFound(err) {
				return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
			}
			return nil, err
		}
		if len(order.Items) == 0 {
			return nil, fmt.Errorf("%w: order %d has no items", ErrValidation, orderID)
		}
		for _, item := range order.Items {
			name := fmt.Sprintf("Product %d", item.ProductID)
			if product, err := s.Repo.GetProduct(ctx, item.ProductID); err == nil {
				name = product.Name
			}
			lineItems = append(lineItems, payments.LineItem{
				Name:       name,
				UnitAmount: payments.ToMinorUnits(item.UnitPrice),
				Quantity:   int64(item.Quantity),
			})
		}
	}

	session, err := s.Payments.CreateCheckoutSession(ctx, orderID, lineItems)
	if err != nil {
		l.Error("checkout_session_failed", "error", err)
		return nil, fmt.Errorf("%w: payment provider rejected the session", ErrProvider)
	}
	return session, nil
}
