package response

import (
	"time"

	"rail-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string `json:"id"`
	Reference     string `json:"reference"`
	UserID        string `json:"user_id"`
	RouteID       string `json:"route_id"`
	TotalSeats    int    `json:"total_seats"`
	TotalPrice    int    `json:"total_price"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
	CreatedAt     string `json:"created_at"`
}

func NewBookingResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            booking.ID.String(),
		Reference:     booking.Reference,
		UserID:        booking.UserID.String(),
		RouteID:       booking.RouteID.String(),
		TotalSeats:    booking.TotalSeats,
		TotalPrice:    booking.TotalPrice,
		Status:        string(booking.Status),
		PaymentMethod: booking.PaymentMethod,
		PaymentStatus: string(booking.PaymentStatus),
		CreatedAt:     booking.CreatedAt.Format(time.RFC3339),
	}
}

func NewBookingListResponse(bookings []*entity.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingResponse(b))
	}
	return out
}

type PassengerResponse struct {
	ID     string `json:"id"`
	SeatID string `json:"seat_id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
}

func NewPassengerResponse(p *entity.Passenger) *PassengerResponse {
	return &PassengerResponse{
		ID:     p.ID.String(),
		SeatID: p.SeatID.String(),
		Name:   p.Name,
		Age:    p.Age,
	}
}

// BookingDetailResponse is a booking with its passenger manifest and the
// route context a ticket needs.
type BookingDetailResponse struct {
	BookingResponse
	Route      *RouteResponse       `json:"route,omitempty"`
	Passengers []*PassengerResponse `json:"passengers"`
}

func NewBookingDetailResponse(booking *entity.Booking, route *entity.Route, passengers []*entity.Passenger) *BookingDetailResponse {
	detail := &BookingDetailResponse{
		BookingResponse: *NewBookingResponse(booking),
		Passengers:      make([]*PassengerResponse, 0, len(passengers)),
	}
	if route != nil {
		detail.Route = NewRouteResponse(route)
	}
	for _, p := range passengers {
		detail.Passengers = append(detail.Passengers, NewPassengerResponse(p))
	}
	return detail
}
