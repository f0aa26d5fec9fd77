package transport

import (
	"net/http"

	"redmedicos-be/internal/lead"
	"redmedicos-be/internal/logger"
	mw "redmedicos-be/internal/middleware"
	"redmedicos-be/internal/news"
	"redmedicos-be/internal/order"
	"redmedicos-be/internal/payment"
	"redmedicos-be/internal/product"
	"redmedicos-be/internal/user"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handlers bundles every domain service behind the HTTP API.
type Handlers struct {
	Orders   order.Service
	Products product.Service
	Users    user.Service
	Leads    lead.Service
	News     news.Service
	Gateway  payment.Gateway
}

func NewRouter(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(mw.CORS)
	r.Use(mw.AuthMiddleware)
	r.Use(mw.RateLimitMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/payment", func(r chi.Router) {
			r.Post("/confirm", h.confirmPayment)
			r.Post("/reconcile", h.reconcilePayment)
		})

		r.Post("/checkout", h.checkout)

		r.Route("/orders", func(r chi.Router) {
			r.With(mw.RequireAdmin).Get("/", h.listOrders)
			r.With(mw.RequireAuth).Get("/my", h.listMyOrders)
			r.With(mw.RequireAdmin).Patch("/{id}/status", h.updateOrderStatus)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Get("/{id}", h.getProduct)
			r.With(mw.RequireAdmin).Post("/", h.createProduct)
			r.With(mw.RequireAdmin).Put("/{id}", h.updateProduct)
			r.With(mw.RequireAdmin).Delete("/{id}", h.deleteProduct)
		})

		r.Post("/leads", h.submitLead)
		r.Get("/news", h.getNews)
		r.Post("/chat", h.chat)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(mw.RequireAuth).Get("/me", h.me)
		})
	})

	return r
}
