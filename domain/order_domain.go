package domain

import (
	"errors"
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

var (
	MessageSuccessCreateOrder = "order placed successfully"
	MessageSuccessGetOrders   = "orders retrieved successfully"

	MessageFailedCreateOrder = "failed to place order"
	MessageFailedGetOrders   = "failed to retrieve orders"

	ErrCartEmpty     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

type (
	CreateOrderRequest struct {
		FullName     string `json:"full_name" validate:"required"`
		AddressLine1 string `json:"address_line1" validate:"required"`
		City         string `json:"city" validate:"required"`
		State        string `json:"state" validate:"required"`
		ZipCode      string `json:"zip_code" validate:"required"`
	}

	OrderItemResponse struct {
		ID       string          `json:"id"`
		Quantity int             `json:"quantity"`
		Price    float64         `json:"price"`
		Product  ProductResponse `json:"product"`
	}

	OrderResponse struct {
		ID              string              `json:"id"`
		TotalAmount     float64             `json:"total_amount"`
		ShippingAddress string              `json:"shipping_address"`
		Status          string              `json:"status"`
		Items           []OrderItemResponse `json:"items"`
		CreatedAt       time.Time           `json:"created_at"`
	}
)
