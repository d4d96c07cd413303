package product

import (
	"context"
	"slices"

	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/entities"
)

type (
	ProductService interface {
		GetProducts(ctx context.Context, skinType string) ([]domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

// GetProducts lists active products for one catalog skin type, ordered by
// category. An empty skin type returns the whole catalog.
func (s *productService) GetProducts(ctx context.Context, skinType string) ([]domain.ProductResponse, error) {
	if skinType != "" && !slices.Contains(domain.ProductSkinTypes, skinType) {
		return nil, domain.ErrInvalidSkinType
	}

	products, err := s.productRepository.GetProducts(ctx, skinType)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, item := range products {
		response = append(response, toProductResponse(item))
	}

	return response, nil
}

func toProductResponse(product *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Category:    product.Category,
		Brand:       product.Brand,
		SkinType:    product.SkinType,
		CreatedAt:   product.CreatedAt,
	}
}
