package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andrewserrazina/friendly-paws-backend/internal/api/http/handlers"
	"github.com/andrewserrazina/friendly-paws-backend/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Clients        *handlers.ClientsHandler
	Pets           *handlers.PetsHandler
	Bookings       *handlers.BookingsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Registration and login are public;
// every other resource route sits behind the bearer-token gateway.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Auth.Register)
	app.Post("/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	protected.Post("/clients", cfg.Clients.CreateClient)
	protected.Get("/clients", cfg.Clients.ListClients)
	protected.Get("/clients/:id", cfg.Clients.GetClient)
	protected.Delete("/clients/:id", cfg.Clients.DeleteClient)

	protected.Post("/pets", cfg.Pets.CreatePet)
	protected.Get("/pets", cfg.Pets.ListPets)
	protected.Get("/pets/:id", cfg.Pets.GetPet)
	protected.Delete("/pets/:id", cfg.Pets.DeletePet)

	protected.Post("/bookings", cfg.Bookings.CreateBooking)
	protected.Get("/bookings", cfg.Bookings.ListBookings)
	protected.Get("/bookings/:id", cfg.Bookings.GetBooking)
	protected.Delete("/bookings/:id", cfg.Bookings.DeleteBooking)
}
