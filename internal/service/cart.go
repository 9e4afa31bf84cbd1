package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/events"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/repo"
)

type CartService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

type AddToCartInput struct {
	ProductID           uint
	Quantity            int
	NailSizeOptionID    uint
	LeftHandCustomSize  string
	RightHandCustomSize string
}

func (s *CartService) AddToCart(ctx context.Context, userID uint, in AddToCartInput) (*models.Cart, *models.CartItem, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add")

	if in.ProductID == 0 || in.Quantity <= 0 || in.NailSizeOptionID == 0 {
		return nil, nil, fmt.Errorf("%w: product id, quantity and nail size option are required", ErrValidation)
	}

	item := models.CartItem{
		ProductID:           in.ProductID,
		Quantity:            in.Quantity,
		NailSizeOptionID:    in.NailSizeOptionID,
		LeftHandCustomSize:  in.LeftHandCustomSize,
		RightHandCustomSize: in.RightHandCustomSize,
	}

	cart, err := s.Repo.AddToCart(ctx, userID, &item)
	if err != nil {
		switch {
		case repo.NotFound(err):
			return nil, nil, fmt.Errorf("%w: product %d", ErrNotFound, in.ProductID)
		case errors.Is(err, repo.ErrInsufficientStock):
			return nil, nil, fmt.Errorf("%w: product %d", ErrInsufficientStock, in.ProductID)
		default:
			return nil, nil, err
		}
	}

	if err := s.Producer.Publish(ctx, events.TopicCartEvents, fmt.Sprint(userID), map[string]any{
		"type":       "cart_item_added",
		"user_id":    userID,
		"product_id": in.ProductID,
		"quantity":   item.Quantity,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	return cart, &item, nil
}

// UpdateCart recomputes the stored total from the current lines.
func (s *CartService) UpdateCart(ctx context.Context, userID uint) (*models.Cart, error) {
	cart, err := s.cartForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.Repo.RecomputeCartTotal(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.TotalAmount = total
	return cart, nil
}

func (s *CartService) DeleteItem(ctx context.Context, userID, productID uint) (float64, error) {
	l := logging.FromContext(ctx).With("svc", "cart.delete_item")

	cart, err := s.cartForUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	newTotal, err := s.Repo.RemoveCartItemByProduct(ctx, cart.ID, productID)
	if err != nil {
		if repo.NotFound(err) {
			return 0, fmt.Errorf("%w: cart item for product %d", ErrNotFound, productID)
		}
		return 0, err
	}

	if err := s.Producer.Publish(ctx, events.TopicCartEvents, fmt.Sprint(userID), map[string]any{
		"type":       "cart_item_deleted",
		"user_id":    userID,
		"product_id": productID,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	return newTotal, nil
}

func (s *CartService) DeleteAllItems(ctx context.Context, userID uint) error {
	cart, err := s.cartForUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.Repo.DeleteAllCartItems(ctx, cart.ID)
}

func (s *CartService) AddQuantity(ctx context.Context, userID, itemID uint, quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity is required", ErrValidation)
	}

	cart, err := s.cartForUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	newTotal, err := s.Repo.AddQuantity(ctx, cart.ID, itemID, quantity)
	if err != nil {
		if repo.NotFound(err) {
			return 0, fmt.Errorf("%w: cart item %d", ErrNotFound, itemID)
		}
		return 0, err
	}
	return newTotal, nil
}

type CartSnapshotItem struct {
	ProductID           uint    `json:"product_id"`
	Name                string  `json:"name"`
	Image               string  `json:"image"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	NailSizeOption      string  `json:"nail_size_option"`
	LeftHandCustomSize  string  `json:"left_hand_custom_size"`
	RightHandCustomSize string  `json:"right_hand_custom_size"`
}

type CartSnapshot struct {
	CartID     uint               `json:"cart_id"`
	Items      []CartSnapshotItem `json:"items"`
	TotalPrice float64            `json:"total_price"`
}

// ReadCart joins the lines with product and size display data and recomputes
// the total from live prices.
func (s *CartService) ReadCart(ctx context.Context, userID uint) (*CartSnapshot, error) {
	cart, err := s.cartForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.Repo.GetCartItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	snapshot := CartSnapshot{CartID: cart.ID, Items: make([]CartSnapshotItem, 0, len(items))}
	for _, item := range items {
		product, err := s.Repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		sizeName := ""
		if option, err := s.Repo.GetNailSizeOption(ctx, item.NailSizeOptionID); err == nil {
			sizeName = option.Name
		}

		snapshot.Items = append(snapshot.Items, CartSnapshotItem{
			ProductID:           product.ID,
			Name:                product.Name,
			Image:               product.ImageURL,
			Price:               product.Price,
			Quantity:            item.Quantity,
			NailSizeOption:      sizeName,
			LeftHandCustomSize:  item.LeftHandCustomSize,
			RightHandCustomSize: item.RightHandCustomSize,
		})
		snapshot.TotalPrice += product.Price * float64(item.Quantity)
	}

	return &snapshot, nil
}

func (s *CartService) cartForUser(ctx context.Context, userID uint) (*models.Cart, error) {
	cart, err := s.Repo.GetCartByUser(ctx, userID)
	if err != nil {
		if repo.NotFound(err) {
			return nil, fmt.Errorf("%w: cart for user %d", ErrNotFound, userID)
		}
		return nil, err
	}
	return cart, nil
}
