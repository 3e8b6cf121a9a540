package request

type CreateTrainRequest struct {
	TrainNumber string   `json:"train_number" validate:"required,min=3,max=10"`
	Name        string   `json:"name" validate:"required,min=3,max=100"`
	Type        string   `json:"type" validate:"required,min=3,max=30"`
	Capacity    int      `json:"capacity" validate:"required,min=1,max=2000"`
	Amenities   []string `json:"amenities" validate:"omitempty,dive,min=1"`
}

type UpdateTrainRequest struct {
	TrainNumber string   `json:"train_number" validate:"required,min=3,max=10"`
	Name        string   `json:"name" validate:"required,min=3,max=100"`
	Type        string   `json:"type" validate:"required,min=3,max=30"`
	Capacity    int      `json:"capacity" validate:"required,min=1,max=2000"`
	Amenities   []string `json:"amenities" validate:"omitempty,dive,min=1"`
	Status      string   `json:"status" validate:"required,oneof=active maintenance inactive"`
}

type UpdateTrainStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active maintenance inactive"`
}
