package order

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

type fakeOrderRepository struct {
	orders    []*entities.Order
	itemsByID map[string][]*entities.OrderItem
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{itemsByID: make(map[string][]*entities.OrderItem)}
}

func (f *fakeOrderRepository) CreateOrderWithItems(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error {
	for _, item := range items {
		item.OrderID = order.ID
	}
	f.orders = append(f.orders, order)
	f.itemsByID[order.ID.String()] = items
	return nil
}

func (f *fakeOrderRepository) GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	for _, order := range f.orders {
		if order.UserID.String() == userID {
			order.Items = f.itemsByID[order.ID.String()]
			orders = append(orders, order)
		}
	}
	return orders, nil
}

type stubCartRepository struct {
	items   []*entities.CartItem
	cleared bool
}

func (s *stubCartRepository) UpsertCartItem(ctx context.Context, item *entities.CartItem) error {
	return nil
}

func (s *stubCartRepository) GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error) {
	return s.items, nil
}

func (s *stubCartRepository) GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCartRepository) UpdateCartItem(ctx context.Context, item *entities.CartItem) error {
	return nil
}

func (s *stubCartRepository) DeleteCartItem(ctx context.Context, id string) error {
	return nil
}

func (s *stubCartRepository) ClearCart(ctx context.Context, userID string) error {
	s.cleared = true
	s.items = nil
	return nil
}

func cartItemFor(product *entities.Product, quantity int) *entities.CartItem {
	return &entities.CartItem{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   product,
	}
}

func TestCreateOrder(t *testing.T) {
	serum := &entities.Product{ID: uuid.New(), Name: "Niacinamide 10% + Zinc 1%", Price: 1950}
	sunscreen := &entities.Product{ID: uuid.New(), Name: "Daily Mineral Sunscreen SPF 50", Price: 3100}

	cartRepo := &stubCartRepository{items: []*entities.CartItem{
		cartItemFor(serum, 2),
		cartItemFor(sunscreen, 1),
	}}
	orderRepo := newFakeOrderRepository()
	service := NewOrderService(orderRepo, cartRepo)

	req := domain.CreateOrderRequest{
		FullName:     "Ayesha Khan",
		AddressLine1: "House 12, Street 4",
		City:         "Islamabad",
		State:        "ICT",
		ZipCode:      "44000",
	}

	res, err := service.CreateOrder(context.Background(), req, uuid.NewString())
	require.NoError(t, err)

	assert.InDelta(t, 2*1950+3100, res.TotalAmount, 0.0001)
	assert.Equal(t, domain.OrderStatusPending, res.Status)
	assert.Equal(t, "Ayesha Khan\nHouse 12, Street 4\nIslamabad, ICT 44000", res.ShippingAddress)
	require.Len(t, res.Items, 2)

	// Item prices are snapshots of the catalog price at order time.
	assert.Equal(t, serum.Price, res.Items[0].Price)
	assert.Equal(t, 2, res.Items[0].Quantity)

	assert.True(t, cartRepo.cleared)
	require.Len(t, orderRepo.orders, 1)
	assert.Equal(t, domain.OrderStatusPending, orderRepo.orders[0].Status)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	service := NewOrderService(newFakeOrderRepository(), &stubCartRepository{})

	_, err := service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		FullName:     "Ayesha Khan",
		AddressLine1: "House 12, Street 4",
		City:         "Islamabad",
		State:        "ICT",
		ZipCode:      "44000",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}

func TestCreateOrderInvalidUserID(t *testing.T) {
	service := NewOrderService(newFakeOrderRepository(), &stubCartRepository{})

	_, err := service.CreateOrder(context.Background(), domain.CreateOrderRequest{}, "not-a-uuid")

	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetOrders(t *testing.T) {
	product := &entities.Product{ID: uuid.New(), Name: "Gentle Foaming Cleanser", Price: 1450}
	cartRepo := &stubCartRepository{items: []*entities.CartItem{cartItemFor(product, 3)}}
	orderRepo := newFakeOrderRepository()
	service := NewOrderService(orderRepo, cartRepo)
	userID := uuid.NewString()

	_, err := service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		FullName:     "Ayesha Khan",
		AddressLine1: "House 12, Street 4",
		City:         "Islamabad",
		State:        "ICT",
		ZipCode:      "44000",
	}, userID)
	require.NoError(t, err)

	orders, err := service.GetOrders(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.InDelta(t, 3*1450, orders[0].TotalAmount, 0.0001)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 3, orders[0].Items[0].Quantity)
}
