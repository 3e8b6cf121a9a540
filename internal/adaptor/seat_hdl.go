package adaptor

import (
	"encoding/json"
	"net/http"

	"rail-booking/internal/dto/request"
	"rail-booking/pkg/utils"
)

func (h *Handler) ListTrainSeats(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	seats, err := h.service.Seat.GetTrainSeats(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved", seats)
}

func (h *Handler) ListAvailableSeats(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	seats, err := h.service.Seat.GetAvailableSeats(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Available seats retrieved", seats)
}

func (h *Handler) CreateSeat(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.Seat.CreateSeat(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Seat created", seat)
}

func (h *Handler) CreateSeatBatch(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSeatBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seats, err := h.service.Seat.CreateSeatBatch(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Seats created", seats)
}

func (h *Handler) UpdateSeat(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	var req request.UpdateSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.Seat.UpdateSeat(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Seat updated", seat)
}
