package usecase

import (
	"bytes"
	"context"
	"fmt"

	"rail-booking/internal/data/entity"
	"rail-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

type TicketService struct {
	repos *repository.Repository
	log   *zap.Logger
}

func NewTicketService(repos *repository.Repository, log *zap.Logger) *TicketService {
	return &TicketService{
		repos: repos,
		log:   log.With(zap.String("service", "ticket")),
	}
}

// BuildETicket renders a PDF ticket for a confirmed booking. Only the
// owner or an admin may download it.
func (s *TicketService) BuildETicket(ctx context.Context, userID uuid.UUID, isAdmin bool, bookingID uuid.UUID) ([]byte, string, error) {
	booking, err := s.repos.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	if booking == nil {
		return nil, "", ErrNotFound
	}
	if booking.UserID != userID && !isAdmin {
		return nil, "", ErrForbidden
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, "", ErrAlreadyCancelled
	}

	route, err := s.repos.Route.FindByID(ctx, booking.RouteID)
	if err != nil {
		return nil, "", err
	}
	if route == nil {
		return nil, "", ErrNotFound
	}

	train, err := s.repos.Train.FindByID(ctx, route.TrainID)
	if err != nil {
		return nil, "", err
	}
	from, err := s.repos.Station.FindByID(ctx, route.FromStationID)
	if err != nil {
		return nil, "", err
	}
	to, err := s.repos.Station.FindByID(ctx, route.ToStationID)
	if err != nil {
		return nil, "", err
	}
	if train == nil || from == nil || to == nil {
		return nil, "", ErrNotFound
	}

	passengers, err := s.repos.Passenger.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, "", err
	}

	seatByID := make(map[uuid.UUID]*entity.Seat, len(passengers))
	for _, p := range passengers {
		seat, err := s.repos.Seat.FindByID(ctx, p.SeatID)
		if err != nil {
			return nil, "", err
		}
		if seat != nil {
			seatByID[p.SeatID] = seat
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Rail Booking E-Ticket")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Reference: %s", booking.Reference))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Train: %s %s (%s)", train.TrainNumber, train.Name, train.Type))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("From: %s (%s)", from.Name, from.Code))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("To: %s (%s)", to.Name, to.Code))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s   Departure: %s   Arrival: %s",
		route.TravelDate, route.DepartureTime, route.ArrivalTime))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Passengers")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 7, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Age", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Car", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Seat", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 7, "Class", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range passengers {
		car, seatNumber, class := "-", "-", "-"
		if seat, ok := seatByID[p.SeatID]; ok {
			car, seatNumber, class = seat.CarNumber, seat.SeatNumber, seat.Class
		}
		pdf.CellFormat(70, 7, p.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", p.Age), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, car, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, seatNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, class, "1", 1, "C", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total paid: $%.2f", float64(booking.TotalPrice)/100))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.log.Error("Failed to render e-ticket",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, "", fmt.Errorf("render e-ticket: %w", err)
	}

	filename := fmt.Sprintf("ticket-%s.pdf", booking.Reference)
	return buf.Bytes(), filename, nil
}
