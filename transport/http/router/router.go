package router

import (
	"packshift/internal/handlers/booking"
	"packshift/internal/handlers/contact"
	"packshift/internal/handlers/notification"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking      booking.Handler
	Contact      contact.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Contact.Router(router)
	r.DomainHandlers.Notification.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
