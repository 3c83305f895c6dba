package cart

import "time"

const (
	EventItemAdded   = "ItemAddedToCart"
	EventItemUpdated = "ItemUpdated"
	EventItemRemoved = "ItemRemovedFromCart"
)

type ItemAddedToCart struct {
	ProductID        string    `json:"product_id"`
	Quantity         int       `json:"quantity"`
	DeliveryOptionID string    `json:"delivery_option_id"`
	AddedAt          time.Time `json:"added_at"`
}

type ItemUpdated struct {
	ProductID        string    `json:"product_id"`
	Quantity         int       `json:"quantity"`
	DeliveryOptionID string    `json:"delivery_option_id"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ItemRemovedFromCart struct {
	ProductID string    `json:"product_id"`
	RemovedAt time.Time `json:"removed_at"`
}
