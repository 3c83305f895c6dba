// Package pricing implements the cart/order pricing and aggregation
// engine. Every function is pure: inputs are already-loaded collections
// plus an explicit clock value, so results are deterministic and the
// package performs no I/O.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/example/ec-storefront/internal/model"
)

const millisPerDay = 24 * 60 * 60 * 1000

// TaxRate is the flat tax applied to the pre-tax total.
var TaxRate = decimal.New(1, -1) // 0.10

// ExpandedCartItem is a cart line joined with its product. Product is
// nil when the line references a product that does not exist.
type ExpandedCartItem struct {
	model.CartItem
	Product *model.Product `json:"product"`
}

// ExpandedDeliveryOption is a delivery option with its estimated
// arrival time computed from a reference clock.
type ExpandedDeliveryOption struct {
	model.DeliveryOption
	EstimatedDeliveryTimeMs int64 `json:"estimatedDeliveryTimeMs"`
}

// PaymentSummary aggregates the cart into monetary totals, all in
// integer cents.
type PaymentSummary struct {
	ProductCostCents        int64 `json:"productCostCents"`
	ShippingCostCents       int64 `json:"shippingCostCents"`
	TotalCostBeforeTaxCents int64 `json:"totalCostBeforeTaxCents"`
	TaxCents                int64 `json:"taxCents"`
	TotalCostCents          int64 `json:"totalCostCents"`
	TotalItems              int   `json:"totalItems"`
}

// DeliveryStatus describes how far along an order line is.
type DeliveryStatus struct {
	Status          string  `json:"status"`
	ProgressPercent float64 `json:"progressPercent"`
}

const (
	StatusPreparing = "preparing"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
)

// ExpandCart joins each cart item with its product by ID. Lines whose
// productId has no match get a nil Product; the join never fails.
func ExpandCart(cart []model.CartItem, products []model.Product) []ExpandedCartItem {
	expanded := make([]ExpandedCartItem, 0, len(cart))
	for _, item := range cart {
		expanded = append(expanded, ExpandedCartItem{
			CartItem: item,
			Product:  findProduct(products, item.ProductID),
		})
	}
	return expanded
}

// ExpandDeliveryOptions attaches an estimated arrival timestamp to each
// option: nowMs plus the option's lead time in whole days.
func ExpandDeliveryOptions(options []model.DeliveryOption, nowMs int64) []ExpandedDeliveryOption {
	expanded := make([]ExpandedDeliveryOption, 0, len(options))
	for _, opt := range options {
		expanded = append(expanded, ExpandedDeliveryOption{
			DeliveryOption:          opt,
			EstimatedDeliveryTimeMs: nowMs + int64(opt.DeliveryDays)*millisPerDay,
		})
	}
	return expanded
}

// Summarize computes the payment summary for a cart.
//
// A line whose product cannot be resolved contributes nothing to the
// product cost or the item count; a line whose delivery option cannot be
// resolved contributes nothing to shipping. The two lookups are
// independent: an unknown product with a known delivery option still
// pays for shipping.
func Summarize(cart []model.CartItem, products []model.Product, options []model.DeliveryOption) PaymentSummary {
	var summary PaymentSummary

	for _, item := range cart {
		if product := findProduct(products, item.ProductID); product != nil {
			summary.ProductCostCents += product.PriceCents * int64(item.Quantity)
			summary.TotalItems += item.Quantity
		}
		if option := findDeliveryOption(options, item.DeliveryOptionID); option != nil {
			summary.ShippingCostCents += option.PriceCents
		}
	}

	summary.TotalCostBeforeTaxCents = summary.ProductCostCents + summary.ShippingCostCents
	summary.TaxCents = taxFor(summary.TotalCostBeforeTaxCents)
	summary.TotalCostCents = summary.TotalCostBeforeTaxCents + summary.TaxCents
	return summary
}

// taxFor applies TaxRate to an integer-cent amount, rounding half away
// from zero. The arithmetic stays exact the whole way; no floating
// currency is involved.
func taxFor(beforeTaxCents int64) int64 {
	return decimal.NewFromInt(beforeTaxCents).Mul(TaxRate).Round(0).IntPart()
}

// TrackDelivery interpolates an order line's progress between the order
// time and the estimated delivery time, clamped to [0,100], and buckets
// it into preparing / shipped / delivered.
//
// A window of zero or negative length (estimate at or before the order
// time) reports the line as delivered rather than dividing by zero.
func TrackDelivery(order model.Order, line model.OrderLine, nowMs int64) DeliveryStatus {
	window := line.EstimatedDeliveryTimeMs - order.OrderTimeMs
	if window <= 0 {
		return DeliveryStatus{Status: StatusDelivered, ProgressPercent: 100}
	}

	progress := float64(nowMs-order.OrderTimeMs) / float64(window) * 100
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	status := StatusPreparing
	switch {
	case progress > 66:
		status = StatusDelivered
	case progress > 33:
		status = StatusShipped
	}
	return DeliveryStatus{Status: status, ProgressPercent: progress}
}

func findProduct(products []model.Product, id string) *model.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

func findDeliveryOption(options []model.DeliveryOption, id string) *model.DeliveryOption {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}
