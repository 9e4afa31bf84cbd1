package service

import (
	"context"
	"fmt"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/events"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/mail"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/repo"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/util"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Mailer   mail.Sender
	// AlertEmail receives the internal new-order notification.
	AlertEmail string
}

// CreatePreliminaryOrder materializes the user's cart into an order with
// status Processing. The caller-supplied total is persisted verbatim and the
// cart keeps its items.
func (s *OrderService) CreatePreliminaryOrder(ctx context.Context, userID uint, totalAmount float64) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.create_preliminary")

	order, err := s.Repo.CreatePreliminaryOrder(ctx, userID, totalAmount)
	if err != nil {
		if repo.NotFound(err) {
			return nil, fmt.Errorf("%w: cart for user %d", ErrNotFound, userID)
		}
		return nil, err
	}

	if err := s.Producer.Publish(ctx, events.TopicOrderEvents, fmt.Sprint(order.ID), map[string]any{
		"type":     "order_created",
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.TotalAmount,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	return order, nil
}

type ShippingInput struct {
	FirstName     string
	LastName      string
	StreetAddress string
	City          string
	State         string
	Country       string
	PostalCode    string
}

// AttachShippingInfo overwrites the order's shipping fields and moves the
// status to "Updating order" whatever it was before.
func (s *OrderService) AttachShippingInfo(ctx context.Context, orderID uint, in ShippingInput) (*models.Order, error) {
	order, err := s.orderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.FirstName = in.FirstName
	order.LastName = in.LastName
	order.StreetAddress = in.StreetAddress
	order.City = in.City
	order.State = in.State
	order.Country = in.Country
	order.PostalCode = in.PostalCode
	order.Status = models.OrderStatusUpdating

	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Finalize marks the order paid and derives the total from the charged
// amount in minor units. Confirmation emails are fire-and-forget: a send
// failure is logged and the order stays paid.
func (s *OrderService) Finalize(ctx context.Context, orderID uint, amountMinor int64) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.finalize", "order_id", orderID)

	order, err := s.orderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.Status = models.OrderStatusPaid
	order.TotalAmount = float64(amountMinor) / 100
	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.sendOrderMails(ctx, order)

	if err := s.Producer.Publish(ctx, events.TopicOrderEvents, fmt.Sprint(order.ID), map[string]any{
		"type":     "order_paid",
		"order_id": order.ID,
		"user_id":  order.UserID,
		"total":    order.TotalAmount,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	return order, nil
}

func (s *OrderService) sendOrderMails(ctx context.Context, order *models.Order) {
	l := logging.FromContext(ctx).With("svc", "order.notify", "order_id", order.ID)
	if s.Mailer == nil {
		return
	}

	if user, err := s.Repo.GetUserByID(ctx, order.UserID); err != nil {
		l.Warn("mail_skip", "reason", "user lookup failed", "error", err)
	} else if err := s.Mailer.Send(ctx, mail.OrderConfirmation(user.Email, order.ID)); err != nil {
		l.Warn("mail_send_failed", "kind", "confirmation", "error", err)
	}

	if s.AlertEmail == "" {
		return
	}
	if err := s.Mailer.Send(ctx, mail.NewOrderAlert(s.AlertEmail, order.ID)); err != nil {
		l.Warn("mail_send_failed", "kind", "alert", "error", err)
	}
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.orderByID(ctx, id)
}

type OrderDetailsItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type OrderDetails struct {
	OrderID     uint               `json:"order_id"`
	TotalAmount float64            `json:"total_amount"`
	OrderItems  []OrderDetailsItem `json:"order_items"`
}

func (s *OrderService) Details(ctx context.Context, id uint) (*OrderDetails, error) {
	order, err := s.orderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := OrderDetails{
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
		OrderItems:  make([]OrderDetailsItem, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		name := ""
		if product, err := s.Repo.GetProduct(ctx, item.ProductID); err == nil {
			name = product.Name
		}
		details.OrderItems = append(details.OrderItems, OrderDetailsItem{
			ProductName: name,
			Quantity:    item.Quantity,
		})
	}
	return &details, nil
}

type OrderView struct {
	models.Order
	Email string `json:"email"`
}

// ReadOrder is the full projection joining the owning user's email.
func (s *OrderService) ReadOrder(ctx context.Context, id uint) (*OrderView, error) {
	order, err := s.orderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := OrderView{Order: *order}
	if user, err := s.Repo.GetUserByID(ctx, order.UserID); err == nil {
		view.Email = user.Email
	}
	return &view, nil
}

// ListForUser returns the user's order history, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID uint, page, size int) ([]models.Order, error) {
	offset, limit := util.Calculate(page, size)
	return s.Repo.ListOrdersByUser(ctx, userID, limit, offset)
}

func (s *OrderService) orderByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if repo.NotFound(err) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}
	return order, nil
}
