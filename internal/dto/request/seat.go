package request

type SeatSpec struct {
	CarNumber  string `json:"car_number" validate:"required,max=5"`
	SeatNumber string `json:"seat_number" validate:"required,max=5"`
	Class      string `json:"class" validate:"required,oneof=economy business first"`
}

type CreateSeatRequest struct {
	TrainID    string `json:"train_id" validate:"required,uuid4"`
	CarNumber  string `json:"car_number" validate:"required,max=5"`
	SeatNumber string `json:"seat_number" validate:"required,max=5"`
	Class      string `json:"class" validate:"required,oneof=economy business first"`
}

type CreateSeatBatchRequest struct {
	TrainID string     `json:"train_id" validate:"required,uuid4"`
	Seats   []SeatSpec `json:"seats" validate:"required,min=1,max=500,dive"`
}

type UpdateSeatRequest struct {
	CarNumber  string `json:"car_number" validate:"required,max=5"`
	SeatNumber string `json:"seat_number" validate:"required,max=5"`
	Class      string `json:"class" validate:"required,oneof=economy business first"`
	Status     string `json:"status" validate:"required,oneof=available booked reserved"`
}
