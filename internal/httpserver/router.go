package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/middleware"
)

// Deps carries everything the router needs to wire the handlers.
type Deps struct {
	Users     *UserHTTP
	Products  *ProductHTTP
	Carts     *CartHTTP
	Orders    *OrderHTTP
	NailSizes *NailSizeHTTP
	Checkout  *CheckoutHTTP
	Webhook   *WebhookHTTP

	JWTSecret []byte
	Blocklist middleware.Blocklist
}

// Register attaches every route to the echo instance. Auth-protected groups
// share a single RequireAuth middleware; the webhook stays open because it is
// authenticated by its signature instead.
func Register(e *echo.Echo, d Deps) {
	auth := middleware.RequireAuth(d.JWTSecret, d.Blocklist)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	user := e.Group("/user")
	user.POST("/signup", d.Users.Signup)
	user.POST("/login", d.Users.Login)
	user.DELETE("/logout", d.Users.Logout, auth)
	user.GET("", d.Users.GetIdentity, auth)
	user.GET("/:id", d.Users.GetUser, auth)
	user.PUT("/update/:id/username", d.Users.UpdateField("username"), auth)
	user.PUT("/update/:id/password", d.Users.UpdateField("password"), auth)
	user.PUT("/update/:id/email", d.Users.UpdateField("email"), auth)
	user.PUT("/update/:id/avatar", d.Users.UpdateField("avatar"), auth)
	user.PUT("/update/:id/all", d.Users.UpdateField("all"), auth)

	product := e.Group("/product")
	product.POST("/create", d.Products.Create, auth)
	product.PUT("/update/:id", d.Products.Update, auth)
	product.DELETE("/delete/:id", d.Products.Delete, auth)
	product.GET("/read_all", d.Products.List)
	product.GET("/read/:id", d.Products.Get)
	product.GET("/search", d.Products.Search)

	cart := e.Group("/cart", auth)
	cart.POST("/add_to_cart", d.Carts.AddToCart)
	cart.PUT("/update", d.Carts.UpdateCart)
	cart.DELETE("/delete_item/:product_id", d.Carts.DeleteItem)
	cart.DELETE("/delete_all_items", d.Carts.DeleteAllItems)
	cart.PUT("/add_quantity/:item_id", d.Carts.AddQuantity)
	cart.GET("/read", d.Carts.ReadCart)

	order := e.Group("/order", auth)
	order.POST("/create_preliminary_order", d.Orders.CreatePreliminaryOrder)
	order.PUT("/update_order_with_user_info/:id", d.Orders.UpdateWithUserInfo)
	order.POST("/finalize", d.Orders.FinalizeOrder)
	order.GET("/my_orders", d.Orders.ListMyOrders)
	order.GET("/read/:id", d.Orders.ReadOrder)
	order.GET("/details/:id", d.Orders.OrderDetails)
	order.GET("/:id", d.Orders.GetOrder)

	sizes := e.Group("/nail_sizes")
	sizes.GET("", d.NailSizes.List)
	sizes.POST("/create", d.NailSizes.Create, auth)

	e.POST("/create-checkout-session", d.Checkout.CreateSession, auth)
	e.POST("/webhook", d.Webhook.Handle)
}
