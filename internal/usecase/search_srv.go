package usecase

import (
	"context"

	"rail-booking/internal/data/entity"
	"rail-booking/internal/data/repository"
	"rail-booking/internal/dto/request"
	"rail-booking/internal/dto/response"
	"rail-booking/pkg/utils"

	"go.uber.org/zap"
)

type SearchService struct {
	repos *repository.Repository
	log   *zap.Logger
}

func NewSearchService(repos *repository.Repository, log *zap.Logger) *SearchService {
	return &SearchService{
		repos: repos,
		log:   log.With(zap.String("service", "search")),
	}
}

// SearchRoutes finds routes between two stations on a travel date. The
// from and to inputs resolve by exact code first, then by the first
// case-insensitive name match. Unknown stations yield an empty result,
// not an error.
func (s *SearchService) SearchRoutes(ctx context.Context, req request.SearchRoutesRequest) ([]*response.SearchResultResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	from, err := s.resolveStation(ctx, req.From)
	if err != nil {
		return nil, err
	}
	to, err := s.resolveStation(ctx, req.To)
	if err != nil {
		return nil, err
	}
	if from == nil || to == nil {
		s.log.Debug("Search with unresolvable station",
			zap.String("from", req.From),
			zap.String("to", req.To),
		)
		return []*response.SearchResultResponse{}, nil
	}

	routes, err := s.repos.Route.FindByStationsAndDate(ctx, from.ID, to.ID, req.Date)
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

func (s *SearchService) resolveStation(ctx context.Context, query string) (*entity.Station, error) {
	station, err := s.repos.Station.FindByCode(ctx, query)
	if err != nil {
		return nil, err
	}
	if station != nil {
		return station, nil
	}

	return s.repos.Station.SearchByName(ctx, query)
}
