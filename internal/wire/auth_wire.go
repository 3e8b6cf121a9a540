package wire

import (
	"net/http"

	"rail-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func AuthWire(api chi.Router, handler *adaptor.Handler, authMW func(http.Handler) http.Handler) {
	api.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMW)
			r.Post("/logout", handler.Logout)
		})
	})

	api.Group(func(r chi.Router) {
		r.Use(authMW)
		r.Get("/user", handler.Profile)
	})
}
