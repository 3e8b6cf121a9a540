package wire

import (
	"net/http"

	"rail-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func BookingWire(api chi.Router, handler *adaptor.Handler, authMW func(http.Handler) http.Handler) {
	api.Route("/bookings", func(r chi.Router) {
		r.Use(authMW)
		r.Post("/", handler.CreateBooking)
		r.Get("/", handler.ListMyBookings)
		r.Get("/lookup", handler.GetBookingByReference)
		r.Get("/{id}", handler.GetBooking)
		r.Get("/{id}/ticket", handler.DownloadTicket)
		r.Post("/{id}/cancel", handler.CancelBooking)
	})
}
