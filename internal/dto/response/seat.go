package response

import "rail-booking/internal/data/entity"

type SeatResponse struct {
	ID         string `json:"id"`
	TrainID    string `json:"train_id"`
	CarNumber  string `json:"car_number"`
	SeatNumber string `json:"seat_number"`
	Class      string `json:"class"`
	Status     string `json:"status"`
}

func NewSeatResponse(seat *entity.Seat) *SeatResponse {
	return &SeatResponse{
		ID:         seat.ID.String(),
		TrainID:    seat.TrainID.String(),
		CarNumber:  seat.CarNumber,
		SeatNumber: seat.SeatNumber,
		Class:      seat.Class,
		Status:     string(seat.Status),
	}
}

func NewSeatListResponse(seats []*entity.Seat) []*SeatResponse {
	out := make([]*SeatResponse, 0, len(seats))
	for _, s := range seats {
		out = append(out, NewSeatResponse(s))
	}
	return out
}
