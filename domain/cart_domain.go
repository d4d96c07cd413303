package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddToCart      = "product added to cart"
	MessageSuccessGetCartItems   = "cart items retrieved successfully"
	MessageSuccessUpdateCartItem = "cart item updated successfully"
	MessageSuccessRemoveCartItem = "cart item removed successfully"

	MessageFailedAddToCart      = "failed to add product to cart"
	MessageFailedGetCartItems   = "failed to retrieve cart items"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove cart item"

	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)

type (
	AddToCartRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}

	CartItemResponse struct {
		ID        string          `json:"id"`
		Quantity  int             `json:"quantity"`
		Product   ProductResponse `json:"product"`
		CreatedAt time.Time       `json:"created_at"`
	}
)
