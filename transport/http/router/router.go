package router

import (
	"arthive/internal/handlers/analytics"
	"arthive/internal/handlers/artist"
	"arthive/internal/handlers/auth"
	"arthive/internal/handlers/contact"
	"arthive/internal/handlers/exhibition"
	"arthive/internal/handlers/newsletter"
	"arthive/internal/handlers/tag"
	"arthive/internal/handlers/user"
	"arthive/internal/handlers/venue"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	User       user.Handler
	Exhibition exhibition.Handler
	Venue      venue.Handler
	Artist     artist.Handler
	Tag        tag.Handler
	Newsletter newsletter.Handler
	Contact    contact.Handler
	Analytics  analytics.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Exhibition.Router(routerGroup)
		r.DomainHandlers.Venue.Router(routerGroup)
		r.DomainHandlers.Artist.Router(routerGroup)
		r.DomainHandlers.Tag.Router(routerGroup)
		r.DomainHandlers.Newsletter.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
