package models

import (
	"time"
)

// Order.Status values. The storefront flow writes them in this sequence:
// Processing (preliminary order) -> Updating order (shipping attached) -> paid.
// No transition table is enforced.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusUpdating   = "Updating order"
	OrderStatusPaid       = "paid"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"       json:"id"`
	Username     string `gorm:"size:50;uniqueIndex;not null"   json:"username"`
	Email        string `gorm:"size:200;uniqueIndex;not null"  json:"email"`
	PasswordHash string `gorm:"size:300;not null"              json:"-"`
	AvatarImage  string `gorm:"size:300"                       json:"avatar_image"`
}

type Product struct {
	ID                uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name              string  `gorm:"size:100;not null"         json:"name"`
	Description       string  `json:"description"`
	Price             float64 `gorm:"not null"                  json:"price"`
	QuantityAvailable int     `gorm:"not null"                  json:"quantity_available"`
	ImageURL          string  `gorm:"size:200"                  json:"image_url"`
}

type NailSizeOption struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:50;not null"         json:"name"`
	Description string `json:"description"`
}

type Cart struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"cart_id"`
	UserID      uint    `gorm:"uniqueIndex;not null"      json:"user_id"`
	TotalAmount float64 `gorm:"not null;default:0"        json:"total_amount"`
}

type CartItem struct {
	ID                  uint    `gorm:"primaryKey;autoIncrement"  json:"cart_item_id"`
	CartID              uint    `gorm:"index;not null"            json:"cart_id"`
	ProductID           uint    `gorm:"not null"                  json:"product_id"`
	Quantity            int     `gorm:"not null;check:quantity>0" json:"quantity"`
	UnitPrice           float64 `gorm:"not null"                  json:"unit_price"`
	NailSizeOptionID    uint    `gorm:"not null"                  json:"nail_size_option_id"`
	LeftHandCustomSize  string  `gorm:"size:100"                  json:"left_hand_custom_size"`
	RightHandCustomSize string  `gorm:"size:100"                  json:"right_hand_custom_size"`
}

type Order struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"order_id"`
	UserID        uint      `gorm:"index;not null"           json:"user_id"`
	FirstName     string    `gorm:"size:100"                 json:"first_name"`
	LastName      string    `gorm:"size:100"                 json:"last_name"`
	StreetAddress string    `gorm:"size:200"                 json:"street_address"`
	City          string    `gorm:"size:100"                 json:"city"`
	State         string    `gorm:"size:100"                 json:"state"`
	Country       string    `gorm:"size:100"                 json:"country"`
	PostalCode    string    `gorm:"size:20"                  json:"postal_code"`
	TotalAmount   float64   `gorm:"not null"                 json:"total_amount"`
	Status        string    `gorm:"size:50;not null"         json:"status"`
	CreatedAt     time.Time `gorm:"not null"                 json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	ID                  uint    `gorm:"primaryKey;autoIncrement" json:"order_item_id"`
	OrderID             uint    `gorm:"index;not null"           json:"order_id"`
	ProductID           uint    `gorm:"not null"                 json:"product_id"`
	Quantity            int     `gorm:"not null"                 json:"quantity"`
	UnitPrice           float64 `gorm:"not null"                 json:"unit_price"`
	NailSizeOptionID    uint    `gorm:"not null"                 json:"nail_size_option_id"`
	LeftHandCustomSize  string  `gorm:"size:100"                 json:"left_hand_custom_size"`
	RightHandCustomSize string  `gorm:"size:100"                 json:"right_hand_custom_size"`
}

// TokenBlocklist holds jti values of revoked tokens. Rows are written on
// logout and consulted by the auth middleware; there is no expiry sweep.
type TokenBlocklist struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	JTI       string    `gorm:"size:36;index;not null"   json:"jti"`
	Type      string    `gorm:"size:16;not null"         json:"type"`
	UserID    *uint     `json:"user_id"`
	CreatedAt time.Time `gorm:"not null"                 json:"created_at"`
}
