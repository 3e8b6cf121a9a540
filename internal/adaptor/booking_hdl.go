package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"rail-booking/internal/dto/request"
	"rail-booking/pkg/utils"
)

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Booking.CreateBooking(r.Context(), userID, req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin, ok := h.identity(w, r)
	if !ok {
		return
	}

	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	booking, err := h.service.Booking.GetBooking(r.Context(), userID, isAdmin, id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", booking)
}

func (h *Handler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin, ok := h.identity(w, r)
	if !ok {
		return
	}

	reference := r.URL.Query().Get("reference")
	if reference == "" {
		utils.ResponseBadRequest(w, "Missing reference", nil)
		return
	}

	booking, err := h.service.Booking.GetBookingByReference(r.Context(), userID, isAdmin, reference)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", booking)
}

func (h *Handler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := h.identity(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.Booking.ListUserBookings(r.Context(), userID, h.pagination(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", bookings)
}

func (h *Handler) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.Booking.ListAllBookings(r.Context(), h.pagination(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", bookings)
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin, ok := h.identity(w, r)
	if !ok {
		return
	}

	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	booking, err := h.service.Booking.CancelBooking(r.Context(), userID, isAdmin, id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}

func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Booking.UpdateBookingStatus(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", booking)
}

func (h *Handler) DownloadTicket(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin, ok := h.identity(w, r)
	if !ok {
		return
	}

	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	pdf, filename, err := h.service.Ticket.BuildETicket(r.Context(), userID, isAdmin, id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats.Dashboard(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Stats retrieved", stats)
}
