package list_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers"
	"github.com/pbp-kelompok-b10/any-venue/internal/api/middleware"
	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	listSlots "github.com/pbp-kelompok-b10/any-venue/internal/usecase/list_slots"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase ListSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		h.logger.Warn("GET /venues/{id}/slots - Invalid venue ID: %s", mux.Vars(r)["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	query := ListSlotsQuery{Date: r.URL.Query().Get("date")}
	if err := handlers.Validate(&query); err != nil {
		h.logger.Warn("GET /venues/{id}/slots - Invalid date: venue_id=%d, date=%q", venueID, query.Date)
		handlers.RespondValidationError(w, err)
		return
	}

	var session *domain.Session
	if s, ok := middleware.SessionFromContext(r.Context()); ok {
		session = &s
	}

	useCaseReq, err := query.ToUseCaseRequest(venueID, session)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/slots - Failed to parse request: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, listSlots.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/slots - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, listSlots.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		default:
			h.logger.Error("GET /venues/{id}/slots - Failed to list slots: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/slots - Slots retrieved: venue_id=%d, date=%q, slots_count=%d",
		venueID, query.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
