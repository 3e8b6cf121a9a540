package adaptor

import (
	"net/http"

	"rail-booking/internal/dto/request"
	"rail-booking/pkg/utils"
)

func (h *Handler) SearchRoutes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.SearchRoutesRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
		Date: query.Get("date"),
	}

	results, err := h.service.Search.SearchRoutes(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Search completed", results)
}
