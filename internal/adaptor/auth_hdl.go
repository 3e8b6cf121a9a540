package adaptor

import (
	"encoding/json"
	"net/http"

	"rail-booking/internal/dto/request"
	"rail-booking/pkg/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Auth.Register(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Registration successful", user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Auth.Login(r.Context(), req, r.UserAgent(), r.RemoteAddr)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Login successful", result)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Auth.Logout(r.Context(), token); err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}
