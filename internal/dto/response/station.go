package response

import "rail-booking/internal/data/entity"

type StationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	City string `json:"city"`
}

func NewStationResponse(station *entity.Station) *StationResponse {
	return &StationResponse{
		ID:   station.ID.String(),
		Name: station.Name,
		Code: station.Code,
		City: station.City,
	}
}

func NewStationListResponse(stations []*entity.Station) []*StationResponse {
	out := make([]*StationResponse, 0, len(stations))
	for _, s := range stations {
		out = append(out, NewStationResponse(s))
	}
	return out
}
