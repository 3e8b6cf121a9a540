package response

import "rail-booking/internal/data/entity"

type TrainResponse struct {
	ID          string   `json:"id"`
	TrainNumber string   `json:"train_number"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Status      string   `json:"status"`
}

func NewTrainResponse(train *entity.Train) *TrainResponse {
	return &TrainResponse{
		ID:          train.ID.String(),
		TrainNumber: train.TrainNumber,
		Name:        train.Name,
		Type:        train.Type,
		Capacity:    train.Capacity,
		Amenities:   train.Amenities,
		Status:      string(train.Status),
	}
}

func NewTrainListResponse(trains []*entity.Train) []*TrainResponse {
	out := make([]*TrainResponse, 0, len(trains))
	for _, t := range trains {
		out = append(out, NewTrainResponse(t))
	}
	return out
}
