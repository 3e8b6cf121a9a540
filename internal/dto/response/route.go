package response

import "rail-booking/internal/data/entity"

type RouteResponse struct {
	ID             string `json:"id"`
	TrainID        string `json:"train_id"`
	FromStationID  string `json:"from_station_id"`
	ToStationID    string `json:"to_station_id"`
	DepartureTime  string `json:"departure_time"`
	ArrivalTime    string `json:"arrival_time"`
	Duration       string `json:"duration"`
	Price          int    `json:"price"`
	TravelDate     string `json:"travel_date"`
	AvailableSeats int    `json:"available_seats"`
}

func NewRouteResponse(route *entity.Route) *RouteResponse {
	return &RouteResponse{
		ID:             route.ID.String(),
		TrainID:        route.TrainID.String(),
		FromStationID:  route.FromStationID.String(),
		ToStationID:    route.ToStationID.String(),
		DepartureTime:  route.DepartureTime,
		ArrivalTime:    route.ArrivalTime,
		Duration:       route.Duration,
		Price:          route.Price,
		TravelDate:     route.TravelDate,
		AvailableSeats: route.AvailableSeats,
	}
}

func NewRouteListResponse(routes []*entity.Route) []*RouteResponse {
	out := make([]*RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, NewRouteResponse(r))
	}
	return out
}
