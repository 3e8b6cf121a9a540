package wire

import (
	"rail-booking/internal/adaptor"
	"rail-booking/internal/data/repository"
	"rail-booking/internal/usecase"
	"rail-booking/pkg/middleware"
	"rail-booking/pkg/queue"
	"rail-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Wiring assembles services, handlers and routes into the root router.
func Wiring(repos *repository.Repository, config *utils.Config, log *zap.Logger, rdb *redis.Client, publisher *queue.Publisher) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recover(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())

	// A nil *Publisher must stay a nil interface so the booking service
	// can skip publishing entirely.
	var events usecase.BookingEvents
	if publisher != nil {
		events = publisher
	}

	service := usecase.NewService(repos, config, log, events)
	handler := adaptor.NewHandler(service, log)

	authMW := middleware.AuthSession(repos.Session, repos.User, log)
	adminMW := middleware.Admin(repos.User, log)
	cacheMW := middleware.Cache(config.Cache, rdb, log)

	router.Get("/health", handler.Health)

	router.Route("/api", func(api chi.Router) {
		AuthWire(api, handler, authMW)
		StationWire(api, handler, cacheMW)
		TrainWire(api, handler, cacheMW)
		RouteWire(api, handler, cacheMW)
		SearchWire(api, handler, cacheMW)
		BookingWire(api, handler, authMW)
		AdminWire(api, handler, authMW, adminMW)
	})

	return router
}
