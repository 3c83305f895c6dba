package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/example/ec-storefront/internal/cart"
	"github.com/example/ec-storefront/internal/query"
)

type Handlers struct {
	cartSvc *cart.Service
	queries *query.Handler
	now     func() time.Time
	log     *logrus.Entry
}

func NewHandlers(cartSvc *cart.Service, queries *query.Handler) *Handlers {
	return &Handlers{
		cartSvc: cartSvc,
		queries: queries,
		now:     time.Now,
		log:     logrus.WithField("component", "api"),
	}
}

// Catalog

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.queries.ListProducts()
	if err != nil {
		h.storageError(w, err, "Failed to load products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// Cart

func (h *Handlers) GetCartItems(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("expand") == "product" {
		expanded, err := h.queries.ListCartItemsExpanded()
		if err != nil {
			h.storageError(w, err, "Failed to load cart")
			return
		}
		respondJSON(w, http.StatusOK, expanded)
		return
	}

	items, err := h.queries.ListCartItems()
	if err != nil {
		h.storageError(w, err, "Failed to load cart")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handlers) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  *int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	items, err := h.cartSvc.AddItem(r.Context(), req.ProductID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidProduct), errors.Is(err, cart.ErrInvalidQuantity):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.storageError(w, err, "Failed to update cart")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"cartItems": items,
	})
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	var patch cart.UpdatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, _, err := h.cartSvc.UpdateItem(r.Context(), productID, patch)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrNotFound):
			respondError(w, http.StatusNotFound, "Cart item not found")
		case errors.Is(err, cart.ErrInvalidQuantity):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.storageError(w, err, "Failed to update cart")
		}
		return
	}

	resp := map[string]any{"success": true}
	if item != nil {
		resp["item"] = item
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handlers) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	items, err := h.cartSvc.RemoveItem(r.Context(), productID)
	if err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Cart item not found")
			return
		}
		h.storageError(w, err, "Failed to update cart")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"cartItems": items,
	})
}

// Delivery options

func (h *Handlers) GetDeliveryOptions(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("expand") == "estimatedDeliveryTime" {
		expanded, err := h.queries.ListDeliveryOptionsExpanded(h.now().UnixMilli())
		if err != nil {
			h.storageError(w, err, "Failed to load delivery options")
			return
		}
		respondJSON(w, http.StatusOK, expanded)
		return
	}

	options, err := h.queries.ListDeliveryOptions()
	if err != nil {
		h.storageError(w, err, "Failed to load delivery options")
		return
	}
	respondJSON(w, http.StatusOK, options)
}

// Payment summary

func (h *Handlers) GetPaymentSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.queries.PaymentSummary()
	if err != nil {
		h.storageError(w, err, "Failed to calculate payment summary")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// Orders

func (h *Handlers) GetOrders(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("expand") == "products" {
		expanded, err := h.queries.ListOrdersExpanded()
		if err != nil {
			h.storageError(w, err, "Failed to load orders")
			return
		}
		respondJSON(w, http.StatusOK, expanded)
		return
	}

	orders, err := h.queries.ListOrders()
	if err != nil {
		h.storageError(w, err, "Failed to load orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// Helper functions

// storageError logs the real cause and answers with a generic message;
// file paths and parse errors never leak to the client.
func (h *Handlers) storageError(w http.ResponseWriter, err error, message string) {
	h.log.WithError(err).Error(message)
	respondError(w, http.StatusInternalServerError, message)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
