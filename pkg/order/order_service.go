package order

import (
	"context"
	"fmt"

	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/entities"
	"DermaGlow-Backend/pkg/cart"

	"github.com/google/uuid"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderResponse, error)
		GetOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
		cartRepository  cart.CartRepository
	}
)

func NewOrderService(orderRepository OrderRepository, cartRepository cart.CartRepository) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		cartRepository:  cartRepository,
	}
}

// CreateOrder turns the user's current cart into a pending order. The total
// and per-item prices are computed server-side from the catalog rows, and
// the cart is cleared afterwards. There is no payment step.
func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	cartItems, err := s.cartRepository.GetCartItems(ctx, userID)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	if len(cartItems) == 0 {
		return domain.OrderResponse{}, domain.ErrCartEmpty
	}

	var total float64
	orderItems := make([]*entities.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		if item.Product == nil {
			continue
		}
		total += item.Product.Price * float64(item.Quantity)
		orderItems = append(orderItems, &entities.OrderItem{
			ID:        uuid.New(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	shippingAddress := fmt.Sprintf(
		"%s\n%s\n%s, %s %s",
		req.FullName, req.AddressLine1, req.City, req.State, req.ZipCode,
	)

	order := &entities.Order{
		ID:              uuid.New(),
		UserID:          userUUID,
		TotalAmount:     total,
		ShippingAddress: shippingAddress,
		Status:          domain.OrderStatusPending,
	}

	if err := s.orderRepository.CreateOrderWithItems(ctx, order, orderItems); err != nil {
		return domain.OrderResponse{}, err
	}

	if err := s.cartRepository.ClearCart(ctx, userID); err != nil {
		return domain.OrderResponse{}, err
	}

	return domain.OrderResponse{
		ID:              order.ID.String(),
		TotalAmount:     order.TotalAmount,
		ShippingAddress: order.ShippingAddress,
		Status:          order.Status,
		Items:           toOrderItemResponses(orderItems),
		CreatedAt:       order.CreatedAt,
	}, nil
}

func (s *orderService) GetOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, domain.OrderResponse{
			ID:              order.ID.String(),
			TotalAmount:     order.TotalAmount,
			ShippingAddress: order.ShippingAddress,
			Status:          order.Status,
			Items:           toOrderItemResponses(order.Items),
			CreatedAt:       order.CreatedAt,
		})
	}

	return response, nil
}

func toOrderItemResponses(items []*entities.OrderItem) []domain.OrderItemResponse {
	response := make([]domain.OrderItemResponse, 0, len(items))
	for _, item := range items {
		orderItem := domain.OrderItemResponse{
			ID:       item.ID.String(),
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		if item.Product != nil {
			orderItem.Product = domain.ProductResponse{
				ID:       item.Product.ID.String(),
				Name:     item.Product.Name,
				ImageURL: item.Product.ImageURL,
				Brand:    item.Product.Brand,
				Category: item.Product.Category,
				SkinType: item.Product.SkinType,
				Price:    item.Product.Price,
			}
		}
		response = append(response, orderItem)
	}
	return response
}
