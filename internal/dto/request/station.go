package request

type CreateStationRequest struct {
	Name string `json:"name" validate:"required,min=3,max=100"`
	Code string `json:"code" validate:"required,min=2,max=5,alphanum"`
	City string `json:"city" validate:"required,min=2,max=100"`
}

type UpdateStationRequest struct {
	Name string `json:"name" validate:"required,min=3,max=100"`
	Code string `json:"code" validate:"required,min=2,max=5,alphanum"`
	City string `json:"city" validate:"required,min=2,max=100"`
}
