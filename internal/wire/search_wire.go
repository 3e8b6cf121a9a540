package wire

import (
	"net/http"

	"rail-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func SearchWire(api chi.Router, handler *adaptor.Handler, cacheMW func(http.Handler) http.Handler) {
	api.With(cacheMW).Get("/search", handler.SearchRoutes)
}
