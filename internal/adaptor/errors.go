package adaptor

import (
	"errors"
	"net/http"

	"rail-booking/internal/usecase"
	"rail-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors onto HTTP responses. Anything
// unrecognized is a 500 and gets logged; the mapped cases are expected
// request outcomes and are not.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)
		return
	}

	var seatErr *usecase.SeatUnavailableError
	if errors.As(err, &seatErr) {
		ids := make([]string, 0, len(seatErr.SeatIDs))
		for _, id := range seatErr.SeatIDs {
			ids = append(ids, id.String())
		}
		utils.ResponseConflict(w, "Some seats are no longer available", map[string]any{"seats": ids})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, "Resource not found")
	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, "You do not have access to this resource")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "Invalid email or password")
	case errors.Is(err, usecase.ErrAccountDisabled):
		utils.ResponseForbidden(w, "Account is disabled")
	case errors.Is(err, usecase.ErrEmailTaken):
		utils.ResponseConflict(w, "Email already registered", nil)
	case errors.Is(err, usecase.ErrUsernameTaken):
		utils.ResponseConflict(w, "Username already taken", nil)
	case errors.Is(err, usecase.ErrDuplicateCode):
		utils.ResponseConflict(w, "Code already in use", nil)
	case errors.Is(err, usecase.ErrCapacityExceeded):
		utils.ResponseConflict(w, "Route does not have enough seats left", nil)
	case errors.Is(err, usecase.ErrAlreadyCancelled):
		utils.ResponseConflict(w, "Booking is already cancelled", nil)
	default:
		h.log.Error("Unhandled service error", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}
