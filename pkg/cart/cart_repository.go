package cart

import (
	"context"

	"DermaGlow-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CartRepository interface {
		UpsertCartItem(ctx context.Context, item *entities.CartItem) error
		GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error)
		GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error)
		UpdateCartItem(ctx context.Context, item *entities.CartItem) error
		DeleteCartItem(ctx context.Context, id string) error
		ClearCart(ctx context.Context, userID string) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// UpsertCartItem inserts the row or, when the (user, product) pair already
// exists, overwrites its quantity. Overwrite rather than increment is the
// intended semantics of repeated adds.
func (r *cartRepository) UpsertCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(item).Error
}

func (r *cartRepository) GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).Preload("Product").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) UpdateCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CartItem{}).Error
}

func (r *cartRepository) ClearCart(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.CartItem{}).Error
}
