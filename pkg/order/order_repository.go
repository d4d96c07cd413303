package order

import (
	"context"

	"DermaGlow-Backend/entities"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrderWithItems(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error
		GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrderWithItems writes the order and its item snapshot atomically.
func (r *orderRepository) CreateOrderWithItems(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
