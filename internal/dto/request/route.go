package request

type CreateRouteRequest struct {
	TrainID        string `json:"train_id" validate:"required,uuid4"`
	FromStationID  string `json:"from_station_id" validate:"required,uuid4"`
	ToStationID    string `json:"to_station_id" validate:"required,uuid4,nefield=FromStationID"`
	DepartureTime  string `json:"departure_time" validate:"required,len=5"`
	ArrivalTime    string `json:"arrival_time" validate:"required,len=5"`
	Duration       string `json:"duration" validate:"required,max=20"`
	Price          int    `json:"price" validate:"required,min=1"`
	TravelDate     string `json:"travel_date" validate:"required,datetime=2006-01-02"`
	AvailableSeats int    `json:"available_seats" validate:"required,min=0"`
}

type UpdateRouteRequest struct {
	DepartureTime  string `json:"departure_time" validate:"required,len=5"`
	ArrivalTime    string `json:"arrival_time" validate:"required,len=5"`
	Duration       string `json:"duration" validate:"required,max=20"`
	Price          int    `json:"price" validate:"required,min=1"`
	TravelDate     string `json:"travel_date" validate:"required,datetime=2006-01-02"`
	AvailableSeats int    `json:"available_seats" validate:"min=0"`
}
