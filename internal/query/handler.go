// Package query serves the read side of the API: it loads collections
// from the store and hands them to the pricing engine for joins and
// aggregation. All clock reads happen here so the engine stays pure.
package query

import (
	"github.com/example/ec-storefront/internal/infrastructure/store"
	"github.com/example/ec-storefront/internal/model"
	"github.com/example/ec-storefront/internal/pricing"
)

// ExpandedOrderLine is an order line joined with its product.
type ExpandedOrderLine struct {
	model.OrderLine
	Product *model.Product `json:"product"`
}

// ExpandedOrder is an order whose lines carry their joined products.
type ExpandedOrder struct {
	model.Order
	Products []ExpandedOrderLine `json:"products"`
}

type Handler struct {
	store store.Store
}

func NewHandler(st store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) ListProducts() ([]model.Product, error) {
	return h.store.LoadProducts()
}

func (h *Handler) ListCartItems() ([]model.CartItem, error) {
	return h.store.LoadCart()
}

// ListCartItemsExpanded joins each cart line with its product. Unknown
// products come back as null, matching the join contract of the engine.
func (h *Handler) ListCartItemsExpanded() ([]pricing.ExpandedCartItem, error) {
	cart, err := h.store.LoadCart()
	if err != nil {
		return nil, err
	}
	products, err := h.store.LoadProducts()
	if err != nil {
		return nil, err
	}
	return pricing.ExpandCart(cart, products), nil
}

func (h *Handler) ListDeliveryOptions() ([]model.DeliveryOption, error) {
	return h.store.LoadDeliveryOptions()
}

func (h *Handler) ListDeliveryOptionsExpanded(nowMs int64) ([]pricing.ExpandedDeliveryOption, error) {
	options, err := h.store.LoadDeliveryOptions()
	if err != nil {
		return nil, err
	}
	return pricing.ExpandDeliveryOptions(options, nowMs), nil
}

func (h *Handler) PaymentSummary() (pricing.PaymentSummary, error) {
	cart, err := h.store.LoadCart()
	if err != nil {
		return pricing.PaymentSummary{}, err
	}
	products, err := h.store.LoadProducts()
	if err != nil {
		return pricing.PaymentSummary{}, err
	}
	options, err := h.store.LoadDeliveryOptions()
	if err != nil {
		return pricing.PaymentSummary{}, err
	}
	return pricing.Summarize(cart, products, options), nil
}

func (h *Handler) ListOrders() ([]model.Order, error) {
	return h.store.LoadOrders()
}

// ListOrdersExpanded joins every order line with its product.
func (h *Handler) ListOrdersExpanded() ([]ExpandedOrder, error) {
	orders, err := h.store.LoadOrders()
	if err != nil {
		return nil, err
	}
	products, err := h.store.LoadProducts()
	if err != nil {
		return nil, err
	}

	expanded := make([]ExpandedOrder, 0, len(orders))
	for _, order := range orders {
		lines := make([]ExpandedOrderLine, 0, len(order.Products))
		for _, line := range order.Products {
			lines = append(lines, ExpandedOrderLine{
				OrderLine: line,
				Product:   findProduct(products, line.ProductID),
			})
		}
		expanded = append(expanded, ExpandedOrder{Order: order, Products: lines})
	}
	return expanded, nil
}

func findProduct(products []model.Product, id string) *model.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
