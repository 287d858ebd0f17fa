package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/afiliado/internal/http/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/http/finance"
	"github.com/MrJamesThe3rd/afiliado/internal/http/payment"
	"github.com/MrJamesThe3rd/afiliado/internal/http/product"
	"github.com/MrJamesThe3rd/afiliado/internal/http/sale"
	"github.com/MrJamesThe3rd/afiliado/internal/http/settings"
)

type Handlers struct {
	Products *product.Handler
	Sales    *sale.Handler
	Payments *payment.Handler
	Expenses *expense.Handler
	Finance  *finance.Handler
	Settings *settings.Handler
}

func New(h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", h.Products.Routes)
		r.Route("/sales", h.Sales.Routes)
		r.Route("/payments", h.Payments.Routes)
		r.Route("/expenses", h.Expenses.Routes)
		r.Route("/finance", h.Finance.Routes)
		r.Route("/settings", h.Settings.Routes)
	})

	return router
}
