package usecase

import (
	"context"
	"strings"
	"time"

	"rail-booking/internal/data/entity"
	"rail-booking/internal/data/repository"
	"rail-booking/internal/dto/request"
	"rail-booking/internal/dto/response"
	"rail-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StationService struct {
	repos *repository.Repository
	log   *zap.Logger
}

func NewStationService(repos *repository.Repository, log *zap.Logger) *StationService {
	return &StationService{
		repos: repos,
		log:   log.With(zap.String("service", "station")),
	}
}

func (s *StationService) ListStations(ctx context.Context) ([]*response.StationResponse, error) {
	stations, err := s.repos.Station.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return response.NewStationListResponse(stations), nil
}

func (s *StationService) GetStation(ctx context.Context, id uuid.UUID) (*response.StationResponse, error) {
	station, err := s.repos.Station.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, ErrNotFound
	}

	return response.NewStationResponse(station), nil
}

func (s *StationService) CreateStation(ctx context.Context, req request.CreateStationRequest) (*response.StationResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	existing, err := s.repos.Station.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCode
	}

	now := time.Now()
	station := &entity.Station{
		Base: entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		Name: req.Name,
		Code: strings.ToUpper(req.Code),
		City: req.City,
	}

	if err := s.repos.Station.Create(ctx, station); err != nil {
		return nil, err
	}

	s.log.Info("Station created", zap.String("code", station.Code))
	return response.NewStationResponse(station), nil
}

func (s *StationService) UpdateStation(ctx context.Context, id uuid.UUID, req request.UpdateStationRequest) (*response.StationResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	station, err := s.repos.Station.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, ErrNotFound
	}

	code := strings.ToUpper(req.Code)
	if code != station.Code {
		existing, err := s.repos.Station.FindByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateCode
		}
	}

	station.Name = req.Name
	station.Code = code
	station.City = req.City
	station.UpdatedAt = time.Now()

	if err := s.repos.Station.Update(ctx, station); err != nil {
		return nil, err
	}

	return response.NewStationResponse(station), nil
}

func (s *StationService) DeleteStation(ctx context.Context, id uuid.UUID) error {
	station, err := s.repos.Station.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if station == nil {
		return ErrNotFound
	}

	return s.repos.Station.Delete(ctx, id)
}
