package get_user_bookings

import (
	"net/http"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers"
	"github.com/pbp-kelompok-b10/any-venue/internal/api/middleware"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), session.UserID)
	if err != nil {
		h.logger.Error("GET /me/bookings - Failed to get bookings: user_id=%d, error=%v", session.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/bookings - Bookings retrieved successfully: user_id=%d, count=%d",
		session.UserID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
