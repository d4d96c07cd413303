package cart

import (
	"context"
	"testing"

	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCartRepository struct {
	items map[string]*entities.CartItem // keyed by user_id/product_id
	byID  map[string]*entities.CartItem
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{
		items: make(map[string]*entities.CartItem),
		byID:  make(map[string]*entities.CartItem),
	}
}

func pairKey(item *entities.CartItem) string {
	return item.UserID.String() + "/" + item.ProductID.String()
}

func (f *fakeCartRepository) UpsertCartItem(ctx context.Context, item *entities.CartItem) error {
	if existing, ok := f.items[pairKey(item)]; ok {
		existing.Quantity = item.Quantity
		return nil
	}
	f.items[pairKey(item)] = item
	f.byID[item.ID.String()] = item
	return nil
}

func (f *fakeCartRepository) GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	for _, item := range f.items {
		if item.UserID.String() == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeCartRepository) GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error) {
	item, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeCartRepository) UpdateCartItem(ctx context.Context, item *entities.CartItem) error {
	f.byID[item.ID.String()] = item
	return nil
}

func (f *fakeCartRepository) DeleteCartItem(ctx context.Context, id string) error {
	if item, ok := f.byID[id]; ok {
		delete(f.items, pairKey(item))
		delete(f.byID, id)
	}
	return nil
}

func (f *fakeCartRepository) ClearCart(ctx context.Context, userID string) error {
	for id, item := range f.byID {
		if item.UserID.String() == userID {
			delete(f.items, pairKey(item))
			delete(f.byID, id)
		}
	}
	return nil
}

type fakeProductRepository struct {
	products map[string]*entities.Product
}

func (f *fakeProductRepository) GetProducts(ctx context.Context, skinType string) ([]*entities.Product, error) {
	var products []*entities.Product
	for _, p := range f.products {
		products = append(products, p)
	}
	return products, nil
}

func (f *fakeProductRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func seedProduct(repo *fakeProductRepository) *entities.Product {
	p := &entities.Product{
		ID:       uuid.New(),
		Name:     "Hydrating Hyaluronic Serum",
		Price:    2200,
		SkinType: "dry",
		IsActive: true,
	}
	repo.products[p.ID.String()] = p
	return p
}

func TestAddToCartRepeatedAddOverwritesQuantity(t *testing.T) {
	cartRepo := newFakeCartRepository()
	productRepo := &fakeProductRepository{products: make(map[string]*entities.Product)}
	p := seedProduct(productRepo)
	service := NewCartService(cartRepo, productRepo)
	userID := uuid.NewString()

	err := service.AddToCart(context.Background(), domain.AddToCartRequest{ProductID: p.ID.String(), Quantity: 2}, userID)
	require.NoError(t, err)

	err = service.AddToCart(context.Background(), domain.AddToCartRequest{ProductID: p.ID.String(), Quantity: 5}, userID)
	require.NoError(t, err)

	items, err := cartRepo.GetCartItems(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	service := NewCartService(newFakeCartRepository(), &fakeProductRepository{products: make(map[string]*entities.Product)})

	err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		ProductID: uuid.NewString(),
		Quantity:  1,
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddToCartInvalidQuantity(t *testing.T) {
	service := NewCartService(newFakeCartRepository(), &fakeProductRepository{products: make(map[string]*entities.Product)})

	err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		ProductID: uuid.NewString(),
		Quantity:  0,
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestUpdateCartItemOwnership(t *testing.T) {
	cartRepo := newFakeCartRepository()
	productRepo := &fakeProductRepository{products: make(map[string]*entities.Product)}
	p := seedProduct(productRepo)
	service := NewCartService(cartRepo, productRepo)

	owner := uuid.NewString()
	require.NoError(t, service.AddToCart(context.Background(), domain.AddToCartRequest{ProductID: p.ID.String(), Quantity: 1}, owner))

	items, err := cartRepo.GetCartItems(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, items, 1)
	itemID := items[0].ID.String()

	err = service.UpdateCartItem(context.Background(), itemID, domain.UpdateCartItemRequest{Quantity: 3}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	err = service.UpdateCartItem(context.Background(), itemID, domain.UpdateCartItemRequest{Quantity: 3}, owner)
	require.NoError(t, err)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestRemoveCartItem(t *testing.T) {
	cartRepo := newFakeCartRepository()
	productRepo := &fakeProductRepository{products: make(map[string]*entities.Product)}
	p := seedProduct(productRepo)
	service := NewCartService(cartRepo, productRepo)

	owner := uuid.NewString()
	require.NoError(t, service.AddToCart(context.Background(), domain.AddToCartRequest{ProductID: p.ID.String(), Quantity: 1}, owner))

	items, err := cartRepo.GetCartItems(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, items, 1)
	itemID := items[0].ID.String()

	err = service.RemoveCartItem(context.Background(), itemID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	require.NoError(t, service.RemoveCartItem(context.Background(), itemID, owner))

	err = service.RemoveCartItem(context.Background(), itemID, owner)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}
