package adaptor

import (
	"net/http"

	"rail-booking/internal/dto/request"
	"rail-booking/internal/usecase"
	"rail-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler holds the HTTP endpoints. Route registration lives in the
// wire package.
type Handler struct {
	service *usecase.Service
	log     *zap.Logger
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With(zap.String("component", "handler")),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "ok", nil)
}

// urlID parses the {id} path parameter. A malformed id writes the 400
// itself and returns false.
func (h *Handler) urlID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page and per_page from the query string.
func (h *Handler) pagination(r *http.Request) request.PaginatedRequest {
	return request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}
}

// identity pulls the authenticated user from the request context set by
// the auth middleware.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false, false
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	return userID, role == "admin", true
}
