package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/ec-storefront/internal/api/middleware"
)

// NewRouter wires the API routes. When webDir is non-empty the built
// front end is served from it for all non-API paths.
func NewRouter(handlers *Handlers, webDir string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", handlers.GetProducts).Methods(http.MethodGet)
	api.HandleFunc("/cart-items", handlers.GetCartItems).Methods(http.MethodGet)
	api.HandleFunc("/cart-items", handlers.AddCartItem).Methods(http.MethodPost)
	api.HandleFunc("/cart-items/{productId}", handlers.UpdateCartItem).Methods(http.MethodPut)
	api.HandleFunc("/cart-items/{productId}", handlers.DeleteCartItem).Methods(http.MethodDelete)
	api.HandleFunc("/delivery-options", handlers.GetDeliveryOptions).Methods(http.MethodGet)
	api.HandleFunc("/payment-summary", handlers.GetPaymentSummary).Methods(http.MethodGet)
	api.HandleFunc("/orders", handlers.GetOrders).Methods(http.MethodGet)

	// Static files (web UI)
	if webDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(webDir)))
	}

	return r
}
