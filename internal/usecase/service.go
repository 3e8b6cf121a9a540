package usecase

import (
	"rail-booking/internal/data/repository"
	"rail-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every use case behind one constructor so wiring stays
// a single call site.
type Service struct {
	Auth    *AuthService
	User    *UserService
	Station *StationService
	Train   *TrainService
	Route   *RouteService
	Seat    *SeatService
	Search  *SearchService
	Booking *BookingService
	Ticket  *TicketService
	Stats   *StatsService
}

func NewService(repos *repository.Repository, config *utils.Config, log *zap.Logger, events BookingEvents) *Service {
	return &Service{
		Auth:    NewAuthService(repos, config, log),
		User:    NewUserService(repos, log),
		Station: NewStationService(repos, log),
		Train:   NewTrainService(repos, log),
		Route:   NewRouteService(repos, log),
		Seat:    NewSeatService(repos, log),
		Search:  NewSearchService(repos, log),
		Booking: NewBookingService(repos, log, events),
		Ticket:  NewTicketService(repos, log),
		Stats:   NewStatsService(repos, log),
	}
}
