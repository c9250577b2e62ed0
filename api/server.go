/*
server.go - HTTP router and middleware configuration

PURPOSE:

	Configures the chi router, middleware stack and route definitions. This
	is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
 1. Logger:     Request logging
 2. Recoverer:  Panic recovery (500 instead of crash)
 3. RequestID:  Unique ID per request for tracing
 4. CORS:       Cross-origin requests for dashboards

SECURITY NOTE:

	No authentication middleware. The engine serves a single trusted
	embedding application.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		// Shift store routes
		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.ListShifts)
			r.Post("/", h.AppendShift)
			r.Put("/{driverID}/{date}/bonus", h.SetBonus)
		})

		// Payroll routes
		r.Route("/drivers/{id}/months/{month}", func(r chi.Router) {
			r.Get("/bonus-count", h.BonusCount)
			r.Get("/active-time", h.ActiveTime)
			r.Get("/required-hours", h.RequiredHours)
			r.Get("/statement", h.Statement)
		})
	})

	return r
}
