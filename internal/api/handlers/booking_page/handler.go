package booking_page

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers"
	openBookingPage "github.com/pbp-kelompok-b10/any-venue/internal/usecase/open_booking_page"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase BookingPageUseCase
	logger  Logger
}

func NewHandler(useCase BookingPageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/booking-page
// Запускает очистку прошлых дней и предгенерацию слотов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		h.logger.Warn("GET /venues/{id}/booking-page - Invalid venue ID: %s", mux.Vars(r)["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &openBookingPage.Request{VenueID: venueID})
	if err != nil {
		switch {
		case errors.Is(err, openBookingPage.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/booking-page - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{id}/booking-page - Failed to open booking page: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/booking-page - Booking page opened: venue_id=%d, dates=%d", venueID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
