package wire

import (
	"net/http"

	"rail-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func TrainWire(api chi.Router, handler *adaptor.Handler, cacheMW func(http.Handler) http.Handler) {
	api.Route("/trains", func(r chi.Router) {
		r.With(cacheMW).Get("/", handler.ListTrains)
		r.With(cacheMW).Get("/{id}", handler.GetTrain)

		// Seat availability is never cached, bookings change it at any time.
		r.Get("/{id}/seats", handler.ListTrainSeats)
		r.Get("/{id}/seats/available", handler.ListAvailableSeats)
	})
}
