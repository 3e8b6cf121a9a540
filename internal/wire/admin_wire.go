package wire

import (
	"net/http"

	"rail-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func AdminWire(api chi.Router, handler *adaptor.Handler, authMW, adminMW func(http.Handler) http.Handler) {
	api.Route("/admin", func(r chi.Router) {
		r.Use(authMW)
		r.Use(adminMW)

		r.Get("/stats", handler.DashboardStats)
		r.Get("/users", handler.ListUsers)

		r.Route("/stations", func(r chi.Router) {
			r.Post("/", handler.CreateStation)
			r.Put("/{id}", handler.UpdateStation)
			r.Delete("/{id}", handler.DeleteStation)
		})

		r.Route("/trains", func(r chi.Router) {
			r.Post("/", handler.CreateTrain)
			r.Put("/{id}", handler.UpdateTrain)
			r.Patch("/{id}/status", handler.UpdateTrainStatus)
			r.Delete("/{id}", handler.DeleteTrain)
		})

		r.Route("/seats", func(r chi.Router) {
			r.Post("/", handler.CreateSeat)
			r.Post("/batch", handler.CreateSeatBatch)
			r.Put("/{id}", handler.UpdateSeat)
		})

		r.Route("/routes", func(r chi.Router) {
			r.Post("/", handler.CreateRoute)
			r.Put("/{id}", handler.UpdateRoute)
			r.Delete("/{id}", handler.DeleteRoute)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", handler.ListAllBookings)
			r.Patch("/{id}/status", handler.UpdateBookingStatus)
		})
	})
}
