// Package cart applies add/update/delete operations to the shopping
// cart collection. Every operation reads the entire cart, computes a new
// collection and writes it back whole; there is no partial update and no
// cross-caller coordination, so concurrent mutations race last-writer-wins.
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/ec-storefront/internal/infrastructure/store"
	"github.com/example/ec-storefront/internal/model"
)

// DefaultDeliveryOptionID is assigned to new cart lines that do not
// specify a delivery option.
const DefaultDeliveryOptionID = "1"

var (
	ErrNotFound        = errors.New("cart item not found")
	ErrInvalidProduct  = errors.New("product_id is required")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// EventPublisher receives cart mutation events. Publishing is
// best-effort: failures are logged and never surfaced to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// UpdatePatch carries the fields of an update. Nil means "leave as is".
type UpdatePatch struct {
	Quantity         *int    `json:"quantity"`
	DeliveryOptionID *string `json:"deliveryOptionId"`
}

type Service struct {
	store     store.Store
	publisher EventPublisher
	log       *logrus.Entry
}

// NewService creates a cart service. publisher may be nil, in which
// case mutation events are not emitted.
func NewService(st store.Store, publisher EventPublisher) *Service {
	return &Service{
		store:     st,
		publisher: publisher,
		log:       logrus.WithField("component", "cart"),
	}
}

// AddItem merges quantity into an existing line for the product, or
// appends a new line with the default delivery option. It returns the
// full updated cart.
func (s *Service) AddItem(ctx context.Context, productID string, quantity int) ([]model.CartItem, error) {
	if productID == "" {
		return nil, ErrInvalidProduct
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	items, err := s.store.LoadCart()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			idx = i
			break
		}
	}
	if idx < 0 {
		items = append(items, model.CartItem{
			ProductID:        productID,
			Quantity:         quantity,
			DeliveryOptionID: DefaultDeliveryOptionID,
		})
		idx = len(items) - 1
	}

	if err := s.store.SaveCart(items); err != nil {
		return nil, err
	}

	s.publish(ctx, EventItemAdded, productID, ItemAddedToCart{
		ProductID:        productID,
		Quantity:         quantity,
		DeliveryOptionID: items[idx].DeliveryOptionID,
		AddedAt:          time.Now(),
	})
	return items, nil
}

// UpdateItem applies the patch to the line with the given product ID.
// A patch quantity of zero deletes the line. The second return value is
// the updated line, nil when the update turned into a deletion.
func (s *Service) UpdateItem(ctx context.Context, productID string, patch UpdatePatch) (*model.CartItem, []model.CartItem, error) {
	if patch.Quantity != nil && *patch.Quantity == 0 {
		items, err := s.RemoveItem(ctx, productID)
		return nil, items, err
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, nil, ErrInvalidQuantity
	}

	items, err := s.store.LoadCart()
	if err != nil {
		return nil, nil, err
	}

	idx := -1
	for i := range items {
		if items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, ErrNotFound
	}

	if patch.Quantity != nil {
		items[idx].Quantity = *patch.Quantity
	}
	if patch.DeliveryOptionID != nil {
		items[idx].DeliveryOptionID = *patch.DeliveryOptionID
	}

	if err := s.store.SaveCart(items); err != nil {
		return nil, nil, err
	}

	updated := items[idx]
	s.publish(ctx, EventItemUpdated, productID, ItemUpdated{
		ProductID:        productID,
		Quantity:         updated.Quantity,
		DeliveryOptionID: updated.DeliveryOptionID,
		UpdatedAt:        time.Now(),
	})
	return &updated, items, nil
}

// RemoveItem excludes the line with the given product ID, preserving
// the order of the remaining lines.
func (s *Service) RemoveItem(ctx context.Context, productID string) ([]model.CartItem, error) {
	items, err := s.store.LoadCart()
	if err != nil {
		return nil, err
	}

	remaining := make([]model.CartItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ProductID == productID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return nil, ErrNotFound
	}

	if err := s.store.SaveCart(remaining); err != nil {
		return nil, err
	}

	s.publish(ctx, EventItemRemoved, productID, ItemRemovedFromCart{
		ProductID: productID,
		RemovedAt: time.Now(),
	})
	return remaining, nil
}

type eventEnvelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (s *Service) publish(ctx context.Context, eventType, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, eventEnvelope{Type: eventType, Data: event}); err != nil {
		s.log.WithError(err).WithField("event", eventType).Warn("failed to publish cart event")
	}
}
