package entities

import (
	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	TotalAmount     float64   `json:"total_amount"`
	ShippingAddress string    `json:"shipping_address" gorm:"type:text"`
	Status          string    `json:"status"` // "pending", "processing", "shipped", "delivered", "cancelled"

	User  *User        `gorm:"foreignKey:UserID"`
	Items []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"` // unit price snapshot at checkout time

	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
