package entities

import (
	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	SkinType    string    `json:"skin_type"` // "normal", "sensitive", "oily", "dry", "combination"
	IsActive    bool      `json:"is_active"`

	Timestamp
}
