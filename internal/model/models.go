package model

// Product is an immutable catalog entry. Prices are integer cents.
type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PriceCents int64    `json:"priceCents"`
	Image      string   `json:"image,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// DeliveryOption is an immutable shipping choice.
type DeliveryOption struct {
	ID           string `json:"id"`
	PriceCents   int64  `json:"priceCents"`
	DeliveryDays int    `json:"deliveryDays"`
}

// CartItem is one line of the shopping cart. The cart is an ordered
// slice of these; insertion order is preserved across mutations.
type CartItem struct {
	ProductID        string `json:"productId"`
	Quantity         int    `json:"quantity"`
	DeliveryOptionID string `json:"deliveryOptionId"`
}

// OrderLine is one product within a past order.
type OrderLine struct {
	ProductID               string `json:"productId"`
	Quantity                int    `json:"quantity"`
	EstimatedDeliveryTimeMs int64  `json:"estimatedDeliveryTimeMs"`
}

// Order is a read-only historical record. OrderTimeMs is epoch millis.
type Order struct {
	ID             string      `json:"id"`
	OrderTimeMs    int64       `json:"orderTimeMs"`
	TotalCostCents int64       `json:"totalCostCents,omitempty"`
	Products       []OrderLine `json:"products"`
}
