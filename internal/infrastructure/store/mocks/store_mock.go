package mocks

import (
	"sync"

	"github.com/example/ec-storefront/internal/model"
)

// MockStore is an in-memory implementation of store.Store for testing.
type MockStore struct {
	mu sync.RWMutex

	Products        []model.Product
	DeliveryOptions []model.DeliveryOption
	Cart            []model.CartItem
	Orders          []model.Order

	// Errors to return instead of data, per collection
	LoadProductsErr        error
	LoadDeliveryOptionsErr error
	LoadCartErr            error
	SaveCartErr            error
	LoadOrdersErr          error

	// For tracking calls in tests
	SaveCartCalls [][]model.CartItem
}

// NewMockStore creates a new MockStore with empty collections.
func NewMockStore() *MockStore {
	return &MockStore{
		SaveCartCalls: make([][]model.CartItem, 0),
	}
}

func (m *MockStore) LoadProducts() ([]model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.LoadProductsErr != nil {
		return nil, m.LoadProductsErr
	}
	return append([]model.Product(nil), m.Products...), nil
}

func (m *MockStore) LoadDeliveryOptions() ([]model.DeliveryOption, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.LoadDeliveryOptionsErr != nil {
		return nil, m.LoadDeliveryOptionsErr
	}
	return append([]model.DeliveryOption(nil), m.DeliveryOptions...), nil
}

func (m *MockStore) LoadCart() ([]model.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.LoadCartErr != nil {
		return nil, m.LoadCartErr
	}
	return append([]model.CartItem(nil), m.Cart...), nil
}

func (m *MockStore) SaveCart(items []model.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCartCalls = append(m.SaveCartCalls, append([]model.CartItem(nil), items...))
	if m.SaveCartErr != nil {
		return m.SaveCartErr
	}
	m.Cart = append([]model.CartItem(nil), items...)
	return nil
}

func (m *MockStore) LoadOrders() ([]model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.LoadOrdersErr != nil {
		return nil, m.LoadOrdersErr
	}
	return append([]model.Order(nil), m.Orders...), nil
}

// Reset clears all data and recorded calls.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Products = nil
	m.DeliveryOptions = nil
	m.Cart = nil
	m.Orders = nil
	m.SaveCartCalls = make([][]model.CartItem, 0)
}
