package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/middleware"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/service"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req struct {
		ProductID           uint   `json:"product_id"`
		Quantity            int    `json:"quantity"`
		NailSizeOptionID    uint   `json:"nail_size_option_id"`
		LeftHandCustomSize  string `json:"left_hand_custom_size"`
		RightHandCustomSize string `json:"right_hand_custom_size"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	cart, item, err := h.Svc.AddToCart(ctx, userID, service.AddToCartInput{
		ProductID:           req.ProductID,
		Quantity:            req.Quantity,
		NailSizeOptionID:    req.NailSizeOptionID,
		LeftHandCustomSize:  req.LeftHandCustomSize,
		RightHandCustomSize: req.RightHandCustomSize,
	})
	if err != nil {
		return fail(c, err)
	}

	l.Info("cart_item_added", "user_id", userID, "product_id", req.ProductID)
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Product added to cart successfully",
		"item":         item,
		"total_amount": cart.TotalAmount,
	})
}

func (h *CartHTTP) UpdateCart(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	cart, err := h.Svc.UpdateCart(ctx, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Cart updated successfully", "cart": cart})
}

func (h *CartHTTP) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete_item")

	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	productID, err := pathID(c, "product_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	newTotal, err := h.Svc.DeleteItem(ctx, userID, productID)
	if err != nil {
		return fail(c, err)
	}

	l.Info("cart_item_deleted", "user_id", userID, "product_id", productID)
	return c.JSON(http.StatusOK, echo.Map{
		"message":          "Cart item deleted successfully",
		"new_total_amount": newTotal,
	})
}

func (h *CartHTTP) DeleteAllItems(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	if err := h.Svc.DeleteAllItems(ctx, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "All items in cart deleted successfully"})
}

func (h *CartHTTP) AddQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	itemID, err := pathID(c, "item_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	newTotal, err := h.Svc.AddQuantity(ctx, userID, itemID, req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":          "Quantity added to cart successfully",
		"new_total_amount": newTotal,
	})
}

func (h *CartHTTP) ReadCart(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	snapshot, err := h.Svc.ReadCart(ctx, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}
