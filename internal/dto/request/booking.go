package request

type BookingPassenger struct {
	SeatID string `json:"seat_id" validate:"required,uuid4"`
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Age    int    `json:"age" validate:"required,min=1,max=120"`
}

type CreateBookingRequest struct {
	RouteID       string             `json:"route_id" validate:"required,uuid4"`
	Passengers    []BookingPassenger `json:"passengers" validate:"required,min=1,max=10,dive"`
	PaymentMethod string             `json:"payment_method" validate:"required,oneof=card cash wallet"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed pending cancelled completed"`
}
