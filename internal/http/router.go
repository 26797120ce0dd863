package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abarrotes/pos/internal/auth"
)

type Handlers struct {
	Auth    *AuthHandler
	Cart    *CartHandler
	Payment *PaymentHandler
	Catalog *CatalogHandler
	Report  *ReportHandler
}

// NewRouter wires the API surface. Everything except login and the health
// check sits behind the session token middleware.
func NewRouter(h Handlers, tokens *auth.TokenIssuer, requestTimeout time.Duration, maxBodySize int64) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDHeaderMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.RequestSize(maxBodySize))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(tokens))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/session", h.Auth.GetSession)

			r.Route("/catalog", func(r chi.Router) {
				r.Get("/categories", h.Catalog.Categories)
				r.Get("/categories/{category_id}/products", h.Catalog.Products)
				r.Get("/products", h.Catalog.Search)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.Cart.GetCart)
				r.Post("/items", h.Cart.AddItem)
				r.Delete("/items/{product_id}", h.Cart.RemoveItem)
				r.Delete("/", h.Cart.ClearCart)
			})

			r.Post("/checkout", h.Payment.Checkout)

			r.Route("/payment", func(r chi.Router) {
				r.Get("/", h.Payment.GetPayment)
				r.Post("/method", h.Payment.SelectMethod)
				r.Post("/cash", h.Payment.EnterCash)
				r.Post("/confirm", h.Payment.Confirm)
				r.Post("/cancel", h.Payment.Cancel)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Get("/report", h.Report.Get)
				r.Post("/back", h.Report.Back)
				r.Get("/report/export", h.Report.Export)
			})
		})
	})

	return r
}

// RequestIDHeaderMiddleware echoes the request ID assigned by
// middleware.RequestID back to the client, so it must run after it.
func RequestIDHeaderMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestID := middleware.GetReqID(r.Context()); requestID != "" {
			w.Header().Set("X-Request-ID", requestID)
		}
		next.ServeHTTP(w, r)
	})
}
