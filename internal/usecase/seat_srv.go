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

type SeatService struct {
	repos *repository.Repository
	log   *zap.Logger
}

func NewSeatService(repos *repository.Repository, log *zap.Logger) *SeatService {
	return &SeatService{
		repos: repos,
		log:   log.With(zap.String("service", "seat")),
	}
}

func (s *SeatService) GetTrainSeats(ctx context.Context, trainID uuid.UUID) ([]*response.SeatResponse, error) {
	seats, err := s.repos.Seat.FindByTrainID(ctx, trainID)
	if err != nil {
		return nil, err
	}

	return response.NewSeatListResponse(seats), nil
}

func (s *SeatService) GetAvailableSeats(ctx context.Context, trainID uuid.UUID) ([]*response.SeatResponse, error) {
	seats, err := s.repos.Seat.FindAvailableByTrainID(ctx, trainID)
	if err != nil {
		return nil, err
	}

	return response.NewSeatListResponse(seats), nil
}

func (s *SeatService) CreateSeat(ctx context.Context, req request.CreateSeatRequest) (*response.SeatResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	trainID, err := utils.ParseUUID(req.TrainID)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"train_id": "must be a valid UUID"}}
	}

	train, err := s.repos.Train.FindByID(ctx, trainID)
	if err != nil {
		return nil, err
	}
	if train == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	seat := &entity.Seat{
		Base:       entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		TrainID:    trainID,
		CarNumber:  req.CarNumber,
		SeatNumber: req.SeatNumber,
		Class:      req.Class,
		Status:     entity.SeatStatusAvailable,
	}

	if err := s.repos.Seat.Create(ctx, seat); err != nil {
		return nil, err
	}

	return response.NewSeatResponse(seat), nil
}

func (s *SeatService) CreateSeatBatch(ctx context.Context, req request.CreateSeatBatchRequest) ([]*response.SeatResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	trainID, err := utils.ParseUUID(req.TrainID)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"train_id": "must be a valid UUID"}}
	}

	train, err := s.repos.Train.FindByID(ctx, trainID)
	if err != nil {
		return nil, err
	}
	if train == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	seats := make([]*entity.Seat, 0, len(req.Seats))
	for _, spec := range req.Seats {
		seats = append(seats, &entity.Seat{
			Base:       entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
			TrainID:    trainID,
			CarNumber:  spec.CarNumber,
			SeatNumber: spec.SeatNumber,
			Class:      spec.Class,
			Status:     entity.SeatStatusAvailable,
		})
	}

	if err := s.repos.Seat.CreateBatch(ctx, seats); err != nil {
		return nil, err
	}

	s.log.Info("Seat batch created",
		zap.String("train_id", trainID.String()),
		zap.Int("count", len(seats)),
	)
	return response.NewSeatListResponse(seats), nil
}

func (s *SeatService) UpdateSeat(ctx context.Context, id uuid.UUID, req request.UpdateSeatRequest) (*response.SeatResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	seat, err := s.repos.Seat.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seat == nil {
		return nil, ErrNotFound
	}

	seat.CarNumber = req.CarNumber
	seat.SeatNumber = req.SeatNumber
	seat.Class = req.Class
	seat.Status = entity.SeatStatus(req.Status)
	seat.UpdatedAt = time.Now()

	if err := s.repos.Seat.Update(ctx, seat); err != nil {
		return nil, err
	}

	return response.NewSeatResponse(seat), nil
}

// reserveSeats locks the requested seats and flips them all to booked,
// or none of them. It must run inside a transaction-bound repository so
// a later failure in the same transaction rolls the flip back.
func reserveSeats(ctx context.Context, repos *repository.Repository, trainID uuid.UUID, ids []uuid.UUID) ([]*entity.Seat, error) {
	seats, err := repos.Seat.FindByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(seats))
	var unavailable []uuid.UUID
	for _, seat := range seats {
		found[seat.ID] = true
		if seat.Status != entity.SeatStatusAvailable || seat.TrainID != trainID {
			unavailable = append(unavailable, seat.ID)
		}
	}
	for _, id := range ids {
		if !found[id] {
			unavailable = append(unavailable, id)
		}
	}
	if len(unavailable) > 0 {
		return nil, &SeatUnavailableError{SeatIDs: unavailable}
	}

	if err := repos.Seat.UpdateSeatsStatus(ctx, ids, entity.SeatStatusBooked); err != nil {
		return nil, err
	}

	return seats, nil
}

// releaseSeats puts cancelled seats back in the pool. Like reserveSeats
// it only makes sense inside a transaction.
func releaseSeats(ctx context.Context, repos *repository.Repository, ids []uuid.UUID) error {
	return repos.Seat.UpdateSeatsStatus(ctx, ids, entity.SeatStatusAvailable)
}
