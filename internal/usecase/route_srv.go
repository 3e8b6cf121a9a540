package usecase

import (
	"context"
	"time"

	"rail-booking/internal/data/entity"
	"rail-booking/internal/data/repository"
	"rail-booking/internal/dto/request"
	"rail-booking/internal/dto/response"
	"rail-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RouteService struct {
	repos *repository.Repository
	log   *zap.Logger
}

func NewRouteService(repos *repository.Repository, log *zap.Logger) *RouteService {
	return &RouteService{
		repos: repos,
		log:   log.With(zap.String("service", "route")),
	}
}

func (s *RouteService) ListRoutes(ctx context.Context, p request.PaginatedRequest) (*response.PaginatedResponse[*response.RouteResponse], error) {
	routes, err := s.repos.Route.FindAll(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repos.Route.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(response.NewRouteListResponse(routes), p.Page, p.Limit(), total), nil
}

// FeaturedRoutes lists upcoming routes that still have seats, for the
// landing page.
func (s *RouteService) FeaturedRoutes(ctx context.Context, limit int) ([]*response.SearchResultResponse, error) {
	if limit < 1 || limit > 20 {
		limit = 6
	}

	routes, err := s.repos.Route.FindFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}

	results := make([]*response.SearchResultResponse, 0, len(routes))
	for _, route := range routes {
		result, err := enrichRoute(ctx, s.repos, route)
		if err != nil {
			return nil, err
		}
		if result == nil {
			continue
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *RouteService) GetRoute(ctx context.Context, id uuid.UUID) (*response.RouteResponse, error) {
	route, err := s.repos.Route.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, ErrNotFound
	}

	return response.NewRouteResponse(route), nil
}

func (s *RouteService) CreateRoute(ctx context.Context, req request.CreateRouteRequest) (*response.RouteResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	trainID, err := utils.ParseUUID(req.TrainID)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"train_id": "must be a valid UUID"}}
	}
	fromID, err := utils.ParseUUID(req.FromStationID)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"from_station_id": "must be a valid UUID"}}
	}
	toID, err := utils.ParseUUID(req.ToStationID)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"to_station_id": "must be a valid UUID"}}
	}

	train, err := s.repos.Train.FindByID(ctx, trainID)
	if err != nil {
		return nil, err
	}
	if train == nil {
		return nil, ErrNotFound
	}

	for _, id := range []uuid.UUID{fromID, toID} {
		station, err := s.repos.Station.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if station == nil {
			return nil, ErrNotFound
		}
	}

	now := time.Now()
	route := &entity.Route{
		Base:           entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		TrainID:        trainID,
		FromStationID:  fromID,
		ToStationID:    toID,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		Duration:       req.Duration,
		Price:          req.Price,
		TravelDate:     req.TravelDate,
		AvailableSeats: req.AvailableSeats,
	}

	if err := s.repos.Route.Create(ctx, route); err != nil {
		return nil, err
	}

	s.log.Info("Route created",
		zap.String("route_id", route.ID.String()),
		zap.String("travel_date", route.TravelDate),
	)
	return response.NewRouteResponse(route), nil
}

func (s *RouteService) UpdateRoute(ctx context.Context, id uuid.UUID, req request.UpdateRouteRequest) (*response.RouteResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	route, err := s.repos.Route.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, ErrNotFound
	}

	route.DepartureTime = req.DepartureTime
	route.ArrivalTime = req.ArrivalTime
	route.Duration = req.Duration
	route.Price = req.Price
	route.TravelDate = req.TravelDate
	route.AvailableSeats = req.AvailableSeats
	route.UpdatedAt = time.Now()

	if err := s.repos.Route.Update(ctx, route); err != nil {
		return nil, err
	}

	return response.NewRouteResponse(route), nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	route, err := s.repos.Route.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if route == nil {
		return ErrNotFound
	}

	return s.repos.Route.Delete(ctx, id)
}

// enrichRoute joins a route with its train and endpoint stations. A
// route pointing at missing records yields nil and is silently dropped
// from listings.
func enrichRoute(ctx context.Context, repos *repository.Repository, route *entity.Route) (*response.SearchResultResponse, error) {
	train, err := repos.Train.FindByID(ctx, route.TrainID)
	if err != nil {
		return nil, err
	}
	from, err := repos.Station.FindByID(ctx, route.FromStationID)
	if err != nil {
		return nil, err
	}
	to, err := repos.Station.FindByID(ctx, route.ToStationID)
	if err != nil {
		return nil, err
	}

	if train == nil || from == nil || to == nil {
		return nil, nil
	}

	return response.NewSearchResultResponse(route, train, from, to), nil
}
