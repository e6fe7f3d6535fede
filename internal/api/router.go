package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yleroy/coffeehouse-be/internal/api/handlers"
	"github.com/yleroy/coffeehouse-be/internal/auth"
	"github.com/yleroy/coffeehouse-be/internal/config"
	"github.com/yleroy/coffeehouse-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg *config.Config, authService services.AuthServiceProvider, coffeeService services.CoffeeServiceProvider, issuer *auth.TokenIssuer) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	limiter := newRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(authService, cfg.Session)
	coffeeHandler := handlers.NewCoffeeHandler(coffeeService)

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.middleware)

		r.Route("/user", func(r chi.Router) {
			r.Post("/", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Get("/autologin", userHandler.AutoLogin)
			r.Post("/logout", userHandler.Logout)
			r.Get("/{user_id}", userHandler.Get)
			r.Put("/{user_id}", userHandler.Update)
		})

		r.Route("/coffees", func(r chi.Router) {
			r.Get("/", coffeeHandler.GetAll)
			r.Get("/{id}", coffeeHandler.Get)

			// Catalog mutations need a valid token
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireToken(issuer))
				r.Post("/", coffeeHandler.Create)
				r.Put("/{id}", coffeeHandler.Update)
				r.Delete("/{id}", coffeeHandler.Delete)
			})
		})
	})

	return r
}
