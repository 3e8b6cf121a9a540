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

type TrainService struct {
	repos *repository.Repository
	log   *zap.Logger
}

func NewTrainService(repos *repository.Repository, log *zap.Logger) *TrainService {
	return &TrainService{
		repos: repos,
		log:   log.With(zap.String("service", "train")),
	}
}

func (s *TrainService) ListTrains(ctx context.Context) ([]*response.TrainResponse, error) {
	trains, err := s.repos.Train.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return response.NewTrainListResponse(trains), nil
}

func (s *TrainService) GetTrain(ctx context.Context, id uuid.UUID) (*response.TrainResponse, error) {
	train, err := s.repos.Train.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if train == nil {
		return nil, ErrNotFound
	}

	return response.NewTrainResponse(train), nil
}

func (s *TrainService) CreateTrain(ctx context.Context, req request.CreateTrainRequest) (*response.TrainResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	existing, err := s.repos.Train.FindByNumber(ctx, req.TrainNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCode
	}

	now := time.Now()
	train := &entity.Train{
		Base:        entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		TrainNumber: strings.ToUpper(req.TrainNumber),
		Name:        req.Name,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
		Status:      entity.TrainStatusActive,
	}

	if err := s.repos.Train.Create(ctx, train); err != nil {
		return nil, err
	}

	s.log.Info("Train created", zap.String("train_number", train.TrainNumber))
	return response.NewTrainResponse(train), nil
}

func (s *TrainService) UpdateTrain(ctx context.Context, id uuid.UUID, req request.UpdateTrainRequest) (*response.TrainResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	train, err := s.repos.Train.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if train == nil {
		return nil, ErrNotFound
	}

	number := strings.ToUpper(req.TrainNumber)
	if number != train.TrainNumber {
		existing, err := s.repos.Train.FindByNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateCode
		}
	}

	train.TrainNumber = number
	train.Name = req.Name
	train.Type = req.Type
	train.Capacity = req.Capacity
	train.Amenities = req.Amenities
	train.Status = entity.TrainStatus(req.Status)
	train.UpdatedAt = time.Now()

	if err := s.repos.Train.Update(ctx, train); err != nil {
		return nil, err
	}

	return response.NewTrainResponse(train), nil
}

func (s *TrainService) UpdateTrainStatus(ctx context.Context, id uuid.UUID, req request.UpdateTrainStatusRequest) error {
	if fields := utils.ValidateStruct(req); fields != nil {
		return &ValidationError{Fields: fields}
	}

	train, err := s.repos.Train.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if train == nil {
		return ErrNotFound
	}

	return s.repos.Train.UpdateStatus(ctx, id, entity.TrainStatus(req.Status))
}

func (s *TrainService) DeleteTrain(ctx context.Context, id uuid.UUID) error {
	train, err := s.repos.Train.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if train == nil {
		return ErrNotFound
	}

	return s.repos.Train.Delete(ctx, id)
}
