package wire

import (
	"net/http"

	"rail-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func RouteWire(api chi.Router, handler *adaptor.Handler, cacheMW func(http.Handler) http.Handler) {
	api.Route("/routes", func(r chi.Router) {
		r.With(cacheMW).Get("/", handler.ListRoutes)
		r.With(cacheMW).Get("/featured", handler.FeaturedRoutes)
		r.With(cacheMW).Get("/{id}", handler.GetRoute)
	})
}
