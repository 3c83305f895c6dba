package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ec-storefront/internal/model"
)

var testProducts = []model.Product{
	{ID: "p1", Name: "Socks", PriceCents: 1000},
	{ID: "p2", Name: "Basketball", PriceCents: 2095},
}

var testOptions = []model.DeliveryOption{
	{ID: "1", PriceCents: 0, DeliveryDays: 7},
	{ID: "2", PriceCents: 499, DeliveryDays: 3},
	{ID: "3", PriceCents: 999, DeliveryDays: 1},
}

// ============================================
// ExpandCart Tests
// ============================================

func TestExpandCart_AttachesProducts(t *testing.T) {
	cart := []model.CartItem{
		{ProductID: "p2", Quantity: 1, DeliveryOptionID: "1"},
		{ProductID: "p1", Quantity: 3, DeliveryOptionID: "2"},
	}

	expanded := ExpandCart(cart, testProducts)

	require.Len(t, expanded, 2)
	require.NotNil(t, expanded[0].Product)
	assert.Equal(t, "Basketball", expanded[0].Product.Name)
	require.NotNil(t, expanded[1].Product)
	assert.Equal(t, "Socks", expanded[1].Product.Name)
	// Insertion order preserved
	assert.Equal(t, "p2", expanded[0].ProductID)
}

func TestExpandCart_UnknownProductIsNil(t *testing.T) {
	cart := []model.CartItem{
		{ProductID: "ghost", Quantity: 1, DeliveryOptionID: "1"},
	}

	expanded := ExpandCart(cart, testProducts)

	require.Len(t, expanded, 1)
	assert.Nil(t, expanded[0].Product)
	assert.Equal(t, "ghost", expanded[0].ProductID)
}

func TestExpandCart_EmptyCart(t *testing.T) {
	assert.Empty(t, ExpandCart(nil, testProducts))
}

// ============================================
// ExpandDeliveryOptions Tests
// ============================================

func TestExpandDeliveryOptions(t *testing.T) {
	nowMs := int64(1_700_000_000_000)

	expanded := ExpandDeliveryOptions(testOptions, nowMs)

	require.Len(t, expanded, 3)
	assert.Equal(t, nowMs+7*86_400_000, expanded[0].EstimatedDeliveryTimeMs)
	assert.Equal(t, nowMs+3*86_400_000, expanded[1].EstimatedDeliveryTimeMs)
	assert.Equal(t, nowMs+1*86_400_000, expanded[2].EstimatedDeliveryTimeMs)
}

func TestExpandDeliveryOptions_Deterministic(t *testing.T) {
	nowMs := int64(42)

	first := ExpandDeliveryOptions(testOptions, nowMs)
	second := ExpandDeliveryOptions(testOptions, nowMs)

	assert.Equal(t, first, second)
}

// ============================================
// Summarize Tests
// ============================================

func TestSummarize_ReferenceExample(t *testing.T) {
	cart := []model.CartItem{
		{ProductID: "p1", Quantity: 2, DeliveryOptionID: "1"},
	}
	products := []model.Product{{ID: "p1", PriceCents: 1000}}
	options := []model.DeliveryOption{{ID: "1", PriceCents: 0}}

	summary := Summarize(cart, products, options)

	assert.Equal(t, int64(2000), summary.ProductCostCents)
	assert.Equal(t, int64(0), summary.ShippingCostCents)
	assert.Equal(t, int64(2000), summary.TotalCostBeforeTaxCents)
	assert.Equal(t, int64(200), summary.TaxCents)
	assert.Equal(t, int64(2200), summary.TotalCostCents)
	assert.Equal(t, 2, summary.TotalItems)
}

func TestSummarize_MultipleLines(t *testing.T) {
	cart := []model.CartItem{
		{ProductID: "p1", Quantity: 2, DeliveryOptionID: "2"},
		{ProductID: "p2", Quantity: 1, DeliveryOptionID: "3"},
	}

	summary := Summarize(cart, testProducts, testOptions)

	assert.Equal(t, int64(2*1000+2095), summary.ProductCostCents)
	assert.Equal(t, int64(499+999), summary.ShippingCostCents)
	assert.Equal(t, summary.ProductCostCents+summary.ShippingCostCents, summary.TotalCostBeforeTaxCents)
	assert.Equal(t, summary.TotalCostBeforeTaxCents+summary.TaxCents, summary.TotalCostCents)
	assert.Equal(t, 3, summary.TotalItems)
}

func TestSummarize_UnresolvableProductSkipped(t *testing.T) {
	cart := []model.CartItem{
		{ProductID: "ghost", Quantity: 5, DeliveryOptionID: "2"},
		{ProductID: "p1", Quantity: 1, DeliveryOptionID: "1"},
	}

	summary := Summarize(cart, testProducts, testOptions)

	// The ghost line adds nothing to product cost or item count...
	assert.Equal(t, int64(1000), summary.ProductCostCents)
	assert.Equal(t, 1, summary.TotalItems)
	// ...but its delivery option still ships.
	assert.Equal(t, int64(499), summary.ShippingCostCents)
}

func TestSummarize_UnresolvableDeliveryOptionSkipped(t *testing.T) {
	cart := []model.CartItem{
		{ProductID: "p1", Quantity: 1, DeliveryOptionID: "nope"},
	}

	summary := Summarize(cart, testProducts, testOptions)

	assert.Equal(t, int64(1000), summary.ProductCostCents)
	assert.Equal(t, int64(0), summary.ShippingCostCents)
	assert.Equal(t, 1, summary.TotalItems)
}

func TestSummarize_EmptyCart(t *testing.T) {
	summary := Summarize(nil, testProducts, testOptions)

	assert.Equal(t, PaymentSummary{}, summary)
}

func TestSummarize_TaxRounding(t *testing.T) {
	// Pre-tax totals whose 10% lands on a half cent or worse.
	tests := []struct {
		name           string
		beforeTaxCents int64
		wantTaxCents   int64
	}{
		{"exact", 2000, 200},
		{"half rounds up", 1005, 101}, // 100.5
		{"just below half", 1004, 100},
		{"just above half", 1006, 101},
		{"single cent", 1, 0},   // 0.1
		{"five cents", 5, 1},    // 0.5 rounds away from zero
		{"fifteen cents", 15, 2}, // 1.5 rounds away from zero, not to even
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := []model.CartItem{{ProductID: "x", Quantity: 1, DeliveryOptionID: ""}}
			products := []model.Product{{ID: "x", PriceCents: tt.beforeTaxCents}}

			summary := Summarize(cart, products, nil)

			require.Equal(t, tt.beforeTaxCents, summary.TotalCostBeforeTaxCents)
			assert.Equal(t, tt.wantTaxCents, summary.TaxCents)
			assert.Equal(t, tt.beforeTaxCents+tt.wantTaxCents, summary.TotalCostCents)
		})
	}
}

// ============================================
// TrackDelivery Tests
// ============================================

func TestTrackDelivery_Progression(t *testing.T) {
	order := model.Order{OrderTimeMs: 0}
	line := model.OrderLine{EstimatedDeliveryTimeMs: 1000}

	tests := []struct {
		name         string
		nowMs        int64
		wantStatus   string
		wantProgress float64
	}{
		{"not started", 0, StatusPreparing, 0},
		{"early", 200, StatusPreparing, 20},
		{"at 33 still preparing", 330, StatusPreparing, 33},
		{"past 33 shipped", 500, StatusShipped, 50},
		{"at 66 still shipped", 660, StatusShipped, 66},
		{"past 66 delivered", 700, StatusDelivered, 70},
		{"arrived", 1000, StatusDelivered, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrackDelivery(order, line, tt.nowMs)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.InDelta(t, tt.wantProgress, got.ProgressPercent, 0.0001)
		})
	}
}

func TestTrackDelivery_ClampsAboveWindow(t *testing.T) {
	order := model.Order{OrderTimeMs: 0}
	line := model.OrderLine{EstimatedDeliveryTimeMs: 1000}

	got := TrackDelivery(order, line, 5000)

	assert.Equal(t, StatusDelivered, got.Status)
	assert.Equal(t, float64(100), got.ProgressPercent)
}

func TestTrackDelivery_ClampsBeforeOrderTime(t *testing.T) {
	order := model.Order{OrderTimeMs: 1000}
	line := model.OrderLine{EstimatedDeliveryTimeMs: 2000}

	got := TrackDelivery(order, line, 500)

	assert.Equal(t, StatusPreparing, got.Status)
	assert.Equal(t, float64(0), got.ProgressPercent)
}

func TestTrackDelivery_DegenerateWindow(t *testing.T) {
	order := model.Order{OrderTimeMs: 1000}

	for _, estimate := range []int64{1000, 500} {
		got := TrackDelivery(order, model.OrderLine{EstimatedDeliveryTimeMs: estimate}, 1200)
		assert.Equal(t, StatusDelivered, got.Status)
		assert.Equal(t, float64(100), got.ProgressPercent)
	}
}
