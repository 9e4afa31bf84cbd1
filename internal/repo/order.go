package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
)

// CreatePreliminaryOrder snapshots the user's cart into a new order. The
// caller-supplied total is persisted verbatim; the cart itself is left
// untouched.
func (r *GormRepo) CreatePreliminaryOrder(ctx context.Context, userID uint, totalAmount float64) (*models.Order, error) {
	order := models.Order{
		UserID:      userID,
		TotalAmount: totalAmount,
		Status:      models.OrderStatusProcessing,
		CreatedAt:   time.Now().UTC(),
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return err
		}

		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Order("id ASC").Find(&items).Error; err != nil {
			return err
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return err
			}
			orderItem := models.OrderItem{
				OrderID:             order.ID,
				ProductID:           item.ProductID,
				Quantity:            item.Quantity,
				UnitPrice:           product.Price,
				NailSizeOptionID:    item.NailSizeOptionID,
				LeftHandCustomSize:  item.LeftHandCustomSize,
				RightHandCustomSize: item.RightHandCustomSize,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, orderItem)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) SaveOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Omit("Items").Save(order).Error
}

func (r *GormRepo) ListOrdersByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
