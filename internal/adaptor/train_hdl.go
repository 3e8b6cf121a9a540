package adaptor

import (
	"encoding/json"
	"net/http"

	"rail-booking/internal/dto/request"
	"rail-booking/pkg/utils"
)

func (h *Handler) ListTrains(w http.ResponseWriter, r *http.Request) {
	trains, err := h.service.Train.ListTrains(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Trains retrieved", trains)
}

func (h *Handler) GetTrain(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	train, err := h.service.Train.GetTrain(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Train retrieved", train)
}

func (h *Handler) CreateTrain(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTrainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	train, err := h.service.Train.CreateTrain(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Train created", train)
}

func (h *Handler) UpdateTrain(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	var req request.UpdateTrainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	train, err := h.service.Train.UpdateTrain(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Train updated", train)
}

func (h *Handler) UpdateTrainStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	var req request.UpdateTrainStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Train.UpdateTrainStatus(r.Context(), id, req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Train status updated", nil)
}

func (h *Handler) DeleteTrain(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	if err := h.service.Train.DeleteTrain(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
