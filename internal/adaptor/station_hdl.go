package adaptor

import (
	"encoding/json"
	"net/http"

	"rail-booking/internal/dto/request"
	"rail-booking/pkg/utils"
)

func (h *Handler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.service.Station.ListStations(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Stations retrieved", stations)
}

func (h *Handler) GetStation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	station, err := h.service.Station.GetStation(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Station retrieved", station)
}

func (h *Handler) CreateStation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	station, err := h.service.Station.CreateStation(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Station created", station)
}

func (h *Handler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	var req request.UpdateStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	station, err := h.service.Station.UpdateStation(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Station updated", station)
}

func (h *Handler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	if err := h.service.Station.DeleteStation(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
