package wire

import (
	"net/http"

	"rail-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func StationWire(api chi.Router, handler *adaptor.Handler, cacheMW func(http.Handler) http.Handler) {
	api.Route("/stations", func(r chi.Router) {
		r.Use(cacheMW)
		r.Get("/", handler.ListStations)
		r.Get("/{id}", handler.GetStation)
	})
}
