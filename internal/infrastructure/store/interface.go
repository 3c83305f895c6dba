package store

import "github.com/example/ec-storefront/internal/model"

// Store defines read-entire/write-entire access to the backing collections.
// Products, delivery options and orders are read-only fixtures; only the
// cart is ever written back, and always as a whole.
type Store interface {
	LoadProducts() ([]model.Product, error)
	LoadDeliveryOptions() ([]model.DeliveryOption, error)
	LoadCart() ([]model.CartItem, error)
	SaveCart(items []model.CartItem) error
	LoadOrders() ([]model.Order, error)
}
