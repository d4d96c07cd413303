package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetProducts = "products retrieved successfully"
	MessageFailedGetProducts  = "failed to retrieve products"

	ErrProductNotFound = errors.New("product not found")
	ErrInvalidSkinType = errors.New("invalid skin type")
)

// Product catalog skin types selectable by the user. These are broader than
// the analyzer's detected types ("sensitive" has no analysis code).
var ProductSkinTypes = []string{"normal", "sensitive", "oily", "dry", "combination"}

type (
	ProductResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Price       float64   `json:"price"`
		ImageURL    string    `json:"image_url,omitempty"`
		Category    string    `json:"category"`
		Brand       string    `json:"brand"`
		SkinType    string    `json:"skin_type"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
