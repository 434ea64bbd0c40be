package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/isdelr/vehicle-registry-be/internal/api/handlers"
	"github.com/isdelr/vehicle-registry-be/internal/auth"
	"github.com/isdelr/vehicle-registry-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(tokens *auth.TokenService, userService services.UserServiceProvider, vehicleService services.VehicleServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Post("/login", authHandler.Login)

	r.Route("/vehicles", func(r chi.Router) {
		r.Use(tokens.Authenticator())

		r.With(auth.RequirePermission(auth.OpRead)).Get("/", vehicleHandler.GetAll)
		r.With(auth.RequirePermission(auth.OpCreate)).Post("/", vehicleHandler.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.With(auth.RequirePermission(auth.OpRead)).Get("/", vehicleHandler.Get)
			r.With(auth.RequirePermission(auth.OpUpdate)).Put("/", vehicleHandler.Update)
			r.With(auth.RequirePermission(auth.OpDelete)).Delete("/", vehicleHandler.Delete)
		})
	})

	return r
}
