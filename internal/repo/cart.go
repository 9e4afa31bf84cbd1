package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
)

func (r *GormRepo) GetCartByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) GetCartItems(ctx context.Context, cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart creates the user's cart on first use, then adds or tops up a
// line inside one transaction: stock is decremented and the running total
// bumped by price*quantity.
func (r *GormRepo) AddToCart(ctx context.Context, userID uint, item *models.CartItem) (*models.Cart, error) {
	var cart models.Cart

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if !NotFound(err) {
				return err
			}
			cart = models.Cart{UserID: userID, TotalAmount: 0}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		}

		var product models.Product
		if err := tx.First(&product, item.ProductID).Error; err != nil {
			return err
		}
		if product.QuantityAvailable < item.Quantity {
			return ErrInsufficientStock
		}

		added := item.Quantity

		var existing models.CartItem
		err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, item.ProductID).First(&existing).Error
		switch {
		case err == nil:
			existing.Quantity += item.Quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*item = existing
		case NotFound(err):
			item.CartID = cart.ID
			item.UnitPrice = product.Price
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		default:
			return err
		}

		product.QuantityAvailable -= added
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		cart.TotalAmount += product.Price * float64(added)
		return tx.Save(&cart).Error
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// RecomputeCartTotal derives the total from the current lines joined with
// live product prices and persists it on the cart.
func (r *GormRepo) RecomputeCartTotal(ctx context.Context, cartID uint) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Select("COALESCE(SUM(products.price * cart_items.quantity), 0)").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cartID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	err = r.DB.WithContext(ctx).Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("total_amount", total).Error
	return total, err
}

// RemoveCartItemByProduct deletes the line for the given product and
// subtracts its cost from the cart total. Stock is not restored.
func (r *GormRepo) RemoveCartItemByProduct(ctx context.Context, cartID, productID uint) (float64, error) {
	var newTotal float64

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error; err != nil {
			return err
		}

		var product models.Product
		if err := tx.First(&product, item.ProductID).Error; err != nil {
			return err
		}

		var cart models.Cart
		if err := tx.First(&cart, cartID).Error; err != nil {
			return err
		}
		cart.TotalAmount -= product.Price * float64(item.Quantity)
		if err := tx.Save(&cart).Error; err != nil {
			return err
		}

		if err := tx.Delete(&item).Error; err != nil {
			return err
		}

		return tx.Model(&models.CartItem{}).
			Select("COALESCE(SUM(products.price * cart_items.quantity), 0)").
			Joins("JOIN products ON products.id = cart_items.product_id").
			Where("cart_items.cart_id = ?", cartID).
			Scan(&newTotal).Error
	})
	return newTotal, err
}

func (r *GormRepo) DeleteAllCartItems(ctx context.Context, cartID uint) error {
	return r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// AddQuantity tops up an existing line and bumps the cart total by
// price*added quantity.
func (r *GormRepo) AddQuantity(ctx context.Context, cartID, itemID uint, quantity int) (float64, error) {
	var newTotal float64

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		if err := tx.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error; err != nil {
			return err
		}

		var product models.Product
		if err := tx.First(&product, item.ProductID).Error; err != nil {
			return err
		}

		item.Quantity += quantity
		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		var cart models.Cart
		if err := tx.First(&cart, cartID).Error; err != nil {
			return err
		}
		cart.TotalAmount += product.Price * float64(quantity)
		if err := tx.Save(&cart).Error; err != nil {
			return err
		}

		newTotal = cart.TotalAmount
		return nil
	})
	return newTotal, err
}
