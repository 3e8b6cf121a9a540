package usecase

import (
	"context"

	"rail-booking/internal/data/entity"
	"rail-booking/internal/data/repository"
	"rail-booking/internal/dto/response"

	"go.uber.org/zap"
)

type StatsService struct {
	repos *repository.Repository
	log   *zap.Logger
}

func NewStatsService(repos *repository.Repository, log *zap.Logger) *StatsService {
	return &StatsService{
		repos: repos,
		log:   log.With(zap.String("service", "stats")),
	}
}

// Dashboard aggregates the admin overview counters.
func (s *StatsService) Dashboard(ctx context.Context) (*response.StatsResponse, error) {
	users, err := s.repos.User.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	stations, err := s.repos.Station.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	trains, err := s.repos.Train.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	routes, err := s.repos.Route.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repos.Booking.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.repos.Booking.CountByStatus(ctx, entity.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repos.Booking.SumRevenue(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repos.Booking.FindRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &response.StatsResponse{
		TotalUsers:        users,
		TotalStations:     stations,
		TotalTrains:       trains,
		TotalRoutes:       routes,
		TotalBookings:     bookings,
		CancelledBookings: cancelled,
		TotalRevenue:      revenue,
		RecentBookings:    response.NewBookingListResponse(recent),
	}, nil
}
