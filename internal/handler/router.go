package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/productapi/productapi-go/internal/middleware"
)

// RouterConfig holds the dependencies of the HTTP surface.
type RouterConfig struct {
	Auth           *AuthHandler
	Products       *ProductHandler
	Verifier       middleware.TokenVerifier
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the HTTP routes. ctx bounds background work started by
// middleware, such as rate limiter eviction.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/register", cfg.Auth.HandleRegister)
		r.Post("/login", cfg.Auth.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg.Verifier))
		r.Get("/products", cfg.Products.HandleList)
		r.Get("/product/{id}", cfg.Products.HandleGet)
		r.Post("/product", cfg.Products.HandleCreate)
		r.Put("/product/{id}", cfg.Products.HandleUpdate)
		r.Delete("/product/{id}", cfg.Products.HandleDelete)
	})

	return r
}
