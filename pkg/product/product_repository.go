package product

import (
	"context"

	"DermaGlow-Backend/entities"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		GetProducts(ctx context.Context, skinType string) ([]*entities.Product, error)
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetProducts(ctx context.Context, skinType string) ([]*entities.Product, error) {
	var products []*entities.Product

	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if skinType != "" {
		query = query.Where("skin_type = ?", skinType)
	}

	if err := query.Order("category asc").Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
