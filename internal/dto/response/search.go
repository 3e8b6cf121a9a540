package response

import "rail-booking/internal/data/entity"

// SearchResultResponse is a route enriched with its train and the two
// endpoint stations, shaped for direct display in a search listing.
type SearchResultResponse struct {
	RouteID        string `json:"route_id"`
	TrainNumber    string `json:"train_number"`
	TrainName      string `json:"train_name"`
	TrainType      string `json:"train_type"`
	FromStation    string `json:"from_station"`
	FromCode       string `json:"from_code"`
	ToStation      string `json:"to_station"`
	ToCode         string `json:"to_code"`
	DepartureTime  string `json:"departure_time"`
	ArrivalTime    string `json:"arrival_time"`
	Duration       string `json:"duration"`
	Price          int    `json:"price"`
	TravelDate     string `json:"travel_date"`
	AvailableSeats int    `json:"available_seats"`
}

func NewSearchResultResponse(route *entity.Route, train *entity.Train, from, to *entity.Station) *SearchResultResponse {
	return &SearchResultResponse{
		RouteID:        route.ID.String(),
		TrainNumber:    train.TrainNumber,
		TrainName:      train.Name,
		TrainType:      train.Type,
		FromStation:    from.Name,
		FromCode:       from.Code,
		ToStation:      to.Name,
		ToCode:         to.Code,
		DepartureTime:  route.DepartureTime,
		ArrivalTime:    route.ArrivalTime,
		Duration:       route.Duration,
		Price:          route.Price,
		TravelDate:     route.TravelDate,
		AvailableSeats: route.AvailableSeats,
	}
}
