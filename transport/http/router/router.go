package router

import (
	"github.com/go-chi/chi/v5"

	"intervuex/internal/handlers/auth"
	"intervuex/internal/handlers/availability"
	"intervuex/internal/handlers/booking"
	"intervuex/internal/handlers/user"
	"intervuex/internal/handlers/wallet"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Availability availability.Handler
	Booking      booking.Handler
	User         user.Handler
	Wallet       wallet.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Wallet.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
