package router

import (
	"gymroom/internal/handlers/identity"
	"gymroom/internal/handlers/room"
	"gymroom/internal/handlers/trainbook"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room      room.Handler
	Trainbook trainbook.Handler
	Identity  identity.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Trainbook.Router(routerGroup)
		r.DomainHandlers.Identity.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
