package router

import (
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/health"
	"hotel/internal/handlers/hotel"
	"hotel/internal/handlers/inventory"
	"hotel/internal/handlers/pricing"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/sync"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "hotel/docs" // swagger spec
)

type DomainHandlers struct {
	Health    health.Handler
	Inventory inventory.Handler
	Pricing   pricing.Handler
	Booking   booking.Handler
	Hotel     hotel.Handler
	Room      room.Handler
	Sync      sync.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Sync.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
