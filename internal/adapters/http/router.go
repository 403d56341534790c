package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers the ledger's HTTP routes and middleware stack.
// Centralizing routes here keeps envelope and error behavior consistent
// across endpoints. requestTimeout bounds every in-flight store call so a
// slow statement surfaces as a timeout failure instead of hanging the client.
func NewRouter(handler *Handler, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)
	if requestTimeout > 0 {
		r.Use(deadlineMiddleware(requestTimeout))
	}

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/favorites", func(r chi.Router) {
		r.Put("/{user_id}/{product_id}", handler.addFavorite)
		r.Get("/{user_id}/{product_id}", handler.isFavorited)
		r.Delete("/{user_id}/{product_id}", handler.removeFavorite)
		r.Get("/{user_id}", handler.listFavorites)
	})

	r.Put("/order", handler.markOrderPaid)
	r.Get("/orders/{user_id}", handler.listOrders)

	r.Get("/membership/{user_id}", handler.membership)

	r.Route("/products", func(r chi.Router) {
		r.Get("/card/{product_id}", handler.productCard)
		r.Get("/list", handler.productList)
	})

	r.Post("/password/forgot", handler.forgotPassword)

	return r
}
