package usecase

import (
	"context"
	"fmt"
	"time"

	"rail-booking/internal/data/entity"
	"rail-booking/internal/data/repository"
	"rail-booking/internal/dto/request"
	"rail-booking/internal/dto/response"
	"rail-booking/pkg/queue"
	"rail-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingEvents receives booking lifecycle notifications after the
// transaction commits. Publish failures never fail the booking.
type BookingEvents interface {
	PublishBookingCreated(ctx context.Context, event queue.BookingCreatedEvent) error
	PublishBookingCancelled(ctx context.Context, event queue.BookingCancelledEvent) error
}

type BookingService struct {
	repos  *repository.Repository
	log    *zap.Logger
	events BookingEvents
}

func NewBookingService(repos *repository.Repository, log *zap.Logger, events BookingEvents) *BookingService {
	return &BookingService{
		repos:  repos,
		log:    log.With(zap.String("service", "booking")),
		events: events,
	}
}

// CreateBooking commits a reservation for every passenger in the request
// or for none of them. Seat rows, the route counter, the booking and its
// passenger manifest all move in one transaction; a conflict on any seat
// rejects the whole request and leaves the inventory untouched.
func (s *BookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req request.CreateBookingRequest) (*response.BookingDetailResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	routeID, err := utils.ParseUUID(req.RouteID)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"route_id": "must be a valid UUID"}}
	}

	seatIDs := make([]uuid.UUID, 0, len(req.Passengers))
	seen := make(map[uuid.UUID]bool, len(req.Passengers))
	for _, p := range req.Passengers {
		seatID, err := utils.ParseUUID(p.SeatID)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{"passengers": "seat_id must be a valid UUID"}}
		}
		if seen[seatID] {
			return nil, &ValidationError{Fields: map[string]string{"passengers": "duplicate seat in request"}}
		}
		seen[seatID] = true
		seatIDs = append(seatIDs, seatID)
	}

	var (
		booking    *entity.Booking
		route      *entity.Route
		train      *entity.Train
		seats      []*entity.Seat
		passengers []*entity.Passenger
	)

	err = s.repos.Tx.Atomic(ctx, func(r *repository.Repository) error {
		route, err = r.Route.FindByIDForUpdate(ctx, routeID)
		if err != nil {
			return err
		}
		if route == nil {
			return ErrNotFound
		}

		train, err = r.Train.FindByID(ctx, route.TrainID)
		if err != nil {
			return err
		}
		if train == nil {
			return ErrNotFound
		}

		if len(seatIDs) > route.AvailableSeats {
			return ErrCapacityExceeded
		}

		seats, err = reserveSeats(ctx, r, route.TrainID, seatIDs)
		if err != nil {
			return err
		}

		ok, err := r.Route.DecrementAvailableSeats(ctx, route.ID, len(seatIDs))
		if err != nil {
			return err
		}
		if !ok {
			return ErrCapacityExceeded
		}
		route.AvailableSeats -= len(seatIDs)

		reference, err := s.uniqueReference(ctx, r)
		if err != nil {
			return err
		}

		now := time.Now()
		booking = &entity.Booking{
			Base:          entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
			Reference:     reference,
			UserID:        userID,
			RouteID:       route.ID,
			TotalSeats:    len(seatIDs),
			TotalPrice:    route.Price * len(seatIDs),
			Status:        entity.BookingStatusConfirmed,
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: entity.PaymentStatusPaid,
		}
		if err := r.Booking.Create(ctx, booking); err != nil {
			return err
		}

		passengers = make([]*entity.Passenger, 0, len(req.Passengers))
		for i, p := range req.Passengers {
			passengers = append(passengers, &entity.Passenger{
				BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: now},
				BookingID:  booking.ID,
				SeatID:     seatIDs[i],
				Name:       p.Name,
				Age:        p.Age,
			})
		}
		return r.Passenger.CreateBatch(ctx, passengers)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.Int("seats", booking.TotalSeats),
	)

	s.publishCreated(ctx, booking, route, train, seats)

	return response.NewBookingDetailResponse(booking, route, passengers), nil
}

// CancelBooking releases the booking's seats back to the pool and
// restores the route counter. Cancelling an already-cancelled booking
// is a no-op returning the current state, the inventory is never
// touched twice.
func (s *BookingService) CancelBooking(ctx context.Context, userID uuid.UUID, isAdmin bool, bookingID uuid.UUID) (*response.BookingResponse, error) {
	var (
		booking          *entity.Booking
		released         int
		alreadyCancelled bool
	)

	err := s.repos.Tx.Atomic(ctx, func(r *repository.Repository) error {
		var err error
		booking, err = r.Booking.FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrNotFound
		}
		if booking.UserID != userID && !isAdmin {
			return ErrForbidden
		}
		if booking.Status == entity.BookingStatusCancelled {
			alreadyCancelled = true
			return nil
		}

		passengers, err := r.Passenger.FindByBookingID(ctx, booking.ID)
		if err != nil {
			return err
		}

		seatIDs := make([]uuid.UUID, 0, len(passengers))
		for _, p := range passengers {
			seatIDs = append(seatIDs, p.SeatID)
		}
		if err := releaseSeats(ctx, r, seatIDs); err != nil {
			return err
		}

		if err := r.Route.IncrementAvailableSeats(ctx, booking.RouteID, booking.TotalSeats); err != nil {
			return err
		}

		if err := r.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled, entity.PaymentStatusRefunded); err != nil {
			return err
		}

		booking.Status = entity.BookingStatusCancelled
		booking.PaymentStatus = entity.PaymentStatusRefunded
		released = len(seatIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if alreadyCancelled {
		return response.NewBookingResponse(booking), nil
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("seats_released", released),
	)

	if s.events != nil {
		_ = s.events.PublishBookingCancelled(ctx, queue.BookingCancelledEvent{
			BookingID:     booking.ID.String(),
			Reference:     booking.Reference,
			UserID:        booking.UserID.String(),
			RouteID:       booking.RouteID.String(),
			SeatsReleased: released,
			CancelledAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}

	return response.NewBookingResponse(booking), nil
}

// UpdateBookingStatus is the admin override. Moving to cancelled goes
// through the full cancellation flow so inventory stays consistent;
// other transitions only touch the booking row.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, req request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	status := entity.BookingStatus(req.Status)
	if status == entity.BookingStatusCancelled {
		return s.CancelBooking(ctx, uuid.Nil, true, bookingID)
	}

	var booking *entity.Booking
	err := s.repos.Tx.Atomic(ctx, func(r *repository.Repository) error {
		var err error
		booking, err = r.Booking.FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrNotFound
		}
		if booking.Status == entity.BookingStatusCancelled {
			return ErrAlreadyCancelled
		}

		paymentStatus := booking.PaymentStatus
		switch status {
		case entity.BookingStatusConfirmed, entity.BookingStatusCompleted:
			paymentStatus = entity.PaymentStatusPaid
		case entity.BookingStatusPending:
			paymentStatus = entity.PaymentStatusPending
		}

		if err := r.Booking.UpdateStatus(ctx, bookingID, status, paymentStatus); err != nil {
			return err
		}

		booking.Status = status
		booking.PaymentStatus = paymentStatus
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response.NewBookingResponse(booking), nil
}

func (s *BookingService) GetBooking(ctx context.Context, userID uuid.UUID, isAdmin bool, bookingID uuid.UUID) (*response.BookingDetailResponse, error) {
	booking, err := s.repos.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if booking.UserID != userID && !isAdmin {
		return nil, ErrForbidden
	}

	route, err := s.repos.Route.FindByID(ctx, booking.RouteID)
	if err != nil {
		return nil, err
	}

	passengers, err := s.repos.Passenger.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	return response.NewBookingDetailResponse(booking, route, passengers), nil
}

func (s *BookingService) GetBookingByReference(ctx context.Context, userID uuid.UUID, isAdmin bool, reference string) (*response.BookingDetailResponse, error) {
	booking, err := s.repos.Booking.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	return s.GetBooking(ctx, userID, isAdmin, booking.ID)
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID uuid.UUID, p request.PaginatedRequest) (*response.PaginatedResponse[*response.BookingResponse], error) {
	bookings, err := s.repos.Booking.FindByUserID(ctx, userID, p.Limit(), p.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repos.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(response.NewBookingListResponse(bookings), p.Page, p.Limit(), total), nil
}

func (s *BookingService) ListAllBookings(ctx context.Context, p request.PaginatedRequest) (*response.PaginatedResponse[*response.BookingResponse], error) {
	bookings, err := s.repos.Booking.FindAll(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repos.Booking.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(response.NewBookingListResponse(bookings), p.Page, p.Limit(), total), nil
}

// uniqueReference draws references until one is free. Collisions are
// rare so a handful of attempts is plenty.
func (s *BookingService) uniqueReference(ctx context.Context, r *repository.Repository) (string, error) {
	for i := 0; i < 5; i++ {
		reference := utils.GenerateBookingReference()
		existing, err := r.Booking.FindByReference(ctx, reference)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return reference, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique booking reference")
}

func (s *BookingService) publishCreated(ctx context.Context, booking *entity.Booking, route *entity.Route, train *entity.Train, seats []*entity.Seat) {
	if s.events == nil {
		return
	}

	seatNumbers := make([]string, 0, len(seats))
	for _, seat := range seats {
		seatNumbers = append(seatNumbers, seat.SeatNumber)
	}

	from, err := s.repos.Station.FindByID(ctx, route.FromStationID)
	if err != nil || from == nil {
		from = &entity.Station{}
	}
	to, err := s.repos.Station.FindByID(ctx, route.ToStationID)
	if err != nil || to == nil {
		to = &entity.Station{}
	}

	_ = s.events.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
		BookingID:   booking.ID.String(),
		Reference:   booking.Reference,
		UserID:      booking.UserID.String(),
		RouteID:     route.ID.String(),
		TrainNumber: train.TrainNumber,
		FromStation: from.Code,
		ToStation:   to.Code,
		TravelDate:  route.TravelDate,
		SeatNumbers: seatNumbers,
		TotalPrice:  booking.TotalPrice,
		CreatedAt:   booking.CreatedAt.UTC().Format(time.RFC3339),
	})
}
