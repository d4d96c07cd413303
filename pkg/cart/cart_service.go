package cart

import (
	"context"
	"errors"

	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/entities"
	"DermaGlow-Backend/pkg/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) error
		GetCartItems(ctx context.Context, userID string) ([]domain.CartItemResponse, error)
		UpdateCartItem(ctx context.Context, id string, req domain.UpdateCartItemRequest, userID string) error
		RemoveCartItem(ctx context.Context, id string, userID string) error
	}

	cartService struct {
		cartRepository    CartRepository
		productRepository product.ProductRepository
	}
)

func NewCartService(cartRepository CartRepository, productRepository product.ProductRepository) CartService {
	return &cartService{
		cartRepository:    cartRepository,
		productRepository: productRepository,
	}
}

func (s *cartService) AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) error {
	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.productRepository.GetProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	productUUID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return domain.ErrParseUUID
	}

	item := &entities.CartItem{
		ID:        uuid.New(),
		UserID:    userUUID,
		ProductID: productUUID,
		Quantity:  req.Quantity,
	}

	return s.cartRepository.UpsertCartItem(ctx, item)
}

func (s *cartService) GetCartItems(ctx context.Context, userID string) ([]domain.CartItemResponse, error) {
	items, err := s.cartRepository.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CartItemResponse, 0, len(items))
	for _, item := range items {
		cartItem := domain.CartItemResponse{
			ID:        item.ID.String(),
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
		}
		if item.Product != nil {
			cartItem.Product = domain.ProductResponse{
				ID:          item.Product.ID.String(),
				Name:        item.Product.Name,
				Description: item.Product.Description,
				Price:       item.Product.Price,
				ImageURL:    item.Product.ImageURL,
				Category:    item.Product.Category,
				Brand:       item.Product.Brand,
				SkinType:    item.Product.SkinType,
				CreatedAt:   item.Product.CreatedAt,
			}
		}
		response = append(response, cartItem)
	}

	return response, nil
}

func (s *cartService) UpdateCartItem(ctx context.Context, id string, req domain.UpdateCartItemRequest, userID string) error {
	if req.Quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	item, err := s.cartRepository.GetCartItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	item.Quantity = req.Quantity
	return s.cartRepository.UpdateCartItem(ctx, item)
}

func (s *cartService) RemoveCartItem(ctx context.Context, id string, userID string) error {
	item, err := s.cartRepository.GetCartItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.cartRepository.DeleteCartItem(ctx, id)
}
